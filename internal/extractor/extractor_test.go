package extractor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creditsea/internal/xmltree"
)

const experianXML = `<?xml version="1.0" encoding="UTF-8"?>
<INProfileResponse>
  <Header>
    <ReportDate>20240115</ReportDate>
  </Header>
  <Current_Application>
    <Current_Application_Details>
      <Current_Applicant_Details>
        <First_Name>Rahul</First_Name>
        <Last_Name>Sharma</Last_Name>
        <MobilePhoneNumber>9876543210</MobilePhoneNumber>
      </Current_Applicant_Details>
    </Current_Application_Details>
  </Current_Application>
  <SCORE>
    <BureauScore>742</BureauScore>
  </SCORE>
  <CAIS_Account>
    <CAIS_Summary>
      <Credit_Account>
        <CreditAccountTotal>4</CreditAccountTotal>
        <CreditAccountActive>3</CreditAccountActive>
        <CreditAccountClosed>1</CreditAccountClosed>
      </Credit_Account>
      <Total_Outstanding_Balance>
        <Outstanding_Balance_All>525000</Outstanding_Balance_All>
        <Outstanding_Balance_Secured>400000</Outstanding_Balance_Secured>
        <Outstanding_Balance_UnSecured>125000</Outstanding_Balance_UnSecured>
      </Total_Outstanding_Balance>
    </CAIS_Summary>
    <CAIS_Account_DETAILS>
      <Account_Number>XXXX1234</Account_Number>
      <Subscriber_Name>HDFC Bank</Subscriber_Name>
      <Account_Type>10</Account_Type>
      <Account_Status>11</Account_Status>
      <Current_Balance>125000</Current_Balance>
      <Amount_Past_Due>1500</Amount_Past_Due>
      <CAIS_Holder_Details>
        <Income_TAX_PAN>abcde1234f</Income_TAX_PAN>
      </CAIS_Holder_Details>
      <CAIS_Holder_Address_Details>
        <First_Line_Of_Address_non_normalized>221B MG Road</First_Line_Of_Address_non_normalized>
        <Second_Line_Of_Address_non_normalized>Indiranagar</Second_Line_Of_Address_non_normalized>
        <City_non_normalized>Bengaluru</City_non_normalized>
        <State_non_normalized>Karnataka</State_non_normalized>
        <ZIP_Postal_Code_non_normalized>560038</ZIP_Postal_Code_non_normalized>
        <CountryCode_non_normalized>IB</CountryCode_non_normalized>
      </CAIS_Holder_Address_Details>
    </CAIS_Account_DETAILS>
    <CAIS_Account_DETAILS>
      <Account_Number>XXXX5678</Account_Number>
      <Subscriber_Name>SBI</Subscriber_Name>
      <Account_Type>52</Account_Type>
      <Account_Status>13</Account_Status>
      <Current_Balance>400000</Current_Balance>
      <Amount_Past_Due>0</Amount_Past_Due>
      <CAIS_Holder_Details>
        <Income_TAX_PAN>abcde1234f</Income_TAX_PAN>
      </CAIS_Holder_Details>
    </CAIS_Account_DETAILS>
  </CAIS_Account>
  <TotalCAPS_Summary>
    <TotalCAPSLast7Days>2</TotalCAPSLast7Days>
  </TotalCAPS_Summary>
</INProfileResponse>`

func TestExtractExperianReport(t *testing.T) {
	result, err := New().Extract([]byte(experianXML), "experian.xml")
	require.NoError(t, err)

	report := result.Report
	assert.Equal(t, "Rahul Sharma", report.Name)
	assert.Equal(t, "9876543210", report.MobilePhone)
	assert.Equal(t, "ABCDE1234F", report.PAN)
	assert.Equal(t, 742.0, report.CreditScore)

	assert.Equal(t, 4.0, report.TotalAccounts)
	assert.Equal(t, 3.0, report.ActiveAccounts)
	assert.Equal(t, 1.0, report.ClosedAccounts)
	assert.Equal(t, 525000.0, report.CurrentBalanceAmount)
	assert.Equal(t, 400000.0, report.SecuredAccountsAmount)
	assert.Equal(t, 125000.0, report.UnsecuredAccountsAmount)
	assert.Equal(t, 2.0, report.LastSevenDaysCreditEnquiries)

	require.Len(t, report.CreditAccounts, 2)
	first := report.CreditAccounts[0]
	assert.Equal(t, "XXXX1234", first.AccountNumber)
	assert.Equal(t, "HDFC Bank", first.BankName)
	assert.Equal(t, "Credit Card", first.AccountType)
	assert.Equal(t, "Active", first.Status)
	assert.Equal(t, 125000.0, first.CurrentBalance)
	assert.Equal(t, 1500.0, first.AmountOverdue)

	second := report.CreditAccounts[1]
	assert.Equal(t, "Home Loan", second.AccountType)
	assert.Equal(t, "Closed", second.Status)

	// Only the first tradeline carries an address block.
	require.Len(t, report.Addresses, 1)
	addr := report.Addresses[0]
	assert.Equal(t, "221B MG Road, Indiranagar", addr.Address)
	assert.Equal(t, "Bengaluru", addr.City)
	assert.Equal(t, "Karnataka", addr.State)
	assert.Equal(t, "560038", addr.Pincode)
	assert.Equal(t, "India", addr.Country)

	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), report.ReportDate)
	assert.NotNil(t, result.RawTree)
}

const genericXML = `<?xml version="1.0" encoding="UTF-8"?>
<creditReport>
  <name>Jane Doe</name>
  <mobilePhone>+91 98765 43210</mobilePhone>
  <pan>fghij5678k</pan>
  <creditScore>810</creditScore>
  <reportSummary>
    <totalAccounts>3</totalAccounts>
    <activeAccounts>2</activeAccounts>
    <currentBalance>45000</currentBalance>
  </reportSummary>
  <reportDate>2024-03-05</reportDate>
</creditReport>`

func TestExtractGenericReport(t *testing.T) {
	result, err := New().Extract([]byte(genericXML), "generic.xml")
	require.NoError(t, err)

	report := result.Report
	assert.Equal(t, "Jane Doe", report.Name)
	// 12 digits after stripping, so the raw value is preserved.
	assert.Equal(t, "+91 98765 43210", report.MobilePhone)
	assert.Equal(t, "FGHIJ5678K", report.PAN)
	assert.Equal(t, 810.0, report.CreditScore)
	assert.Equal(t, 3.0, report.TotalAccounts)
	assert.Equal(t, 2.0, report.ActiveAccounts)
	assert.Equal(t, 45000.0, report.CurrentBalanceAmount)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), report.ReportDate)

	// No list-shaped account or address data: empty, not an error.
	assert.Empty(t, report.CreditAccounts)
	assert.Empty(t, report.Addresses)
}

func TestExtractNestedAccountsMapYieldsEmptyList(t *testing.T) {
	// <creditAccounts> decodes as a map of its children, not a list, so
	// the generic fallback produces no accounts.
	doc := `<creditReport>
  <name>Jane Doe</name>
  <mobilePhone>9876543210</mobilePhone>
  <pan>FGHIJ5678K</pan>
  <creditAccounts>
    <account><accountNumber>1</accountNumber></account>
    <account><accountNumber>2</accountNumber></account>
  </creditAccounts>
</creditReport>`

	result, err := New().Extract([]byte(doc), "nested.xml")
	require.NoError(t, err)
	assert.Empty(t, result.Report.CreditAccounts)
}

func TestExtractMalformedXML(t *testing.T) {
	_, err := New().Extract([]byte(`<open><unclosed>`), "broken.xml")
	require.Error(t, err)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.xml", parseErr.FileName)
}

func TestExtractMissingIdentityFields(t *testing.T) {
	doc := `<creditReport><name>Jane Doe</name><mobilePhone>9876543210</mobilePhone></creditReport>`

	_, err := New().Extract([]byte(doc), "nopan.xml")
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"PAN is required"}, validationErr.Missing)
}

func TestExtractAllIdentityFieldsMissing(t *testing.T) {
	_, err := New().Extract([]byte(`<creditReport><creditScore>700</creditScore></creditReport>`), "empty.xml")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t,
		[]string{"Name is required", "PAN is required", "Mobile phone is required"},
		validationErr.Missing)
}

func TestExtractReportDateFallsBackToNow(t *testing.T) {
	doc := `<creditReport><name>J</name><mobilePhone>9876543210</mobilePhone><pan>FGHIJ5678K</pan></creditReport>`

	before := time.Now().UTC()
	result, err := New().Extract([]byte(doc), "nodate.xml")
	require.NoError(t, err)

	assert.False(t, result.Report.ReportDate.Before(before))
}

func TestNormalizePrefersEarlierRootCandidates(t *testing.T) {
	tree, err := xmltree.Decode([]byte(`<wrapper><creditReport><name>A</name></creditReport><data><name>B</name></data></wrapper>`))
	require.NoError(t, err)

	scoped := Normalize(tree)
	assert.Equal(t, "A", scoped.Text("name"))
}

func TestNormalizeFallsBackToWholeTree(t *testing.T) {
	tree, err := xmltree.Decode([]byte(`<anything><name>C</name></anything>`))
	require.NoError(t, err)

	scoped := Normalize(tree)
	assert.Equal(t, "C", scoped.Text("name"))
}
