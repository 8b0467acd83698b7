package extractor

import (
	"strings"
	"time"

	"creditsea/internal/domain"
	"creditsea/internal/xmltree"
)

// Each extractor tries the Experian bureau layout first and falls back
// to an ordered list of generic field names. All of them are total:
// a document of any shape yields a value, using safe defaults.

// applicantDetails navigates to the Experian applicant block.
func applicantDetails(data xmltree.Tree) xmltree.Tree {
	return data.Map("Current_Application", "Current_Application_Details", "Current_Applicant_Details")
}

func extractName(data xmltree.Tree) string {
	if applicant := applicantDetails(data); applicant != nil {
		full := strings.TrimSpace(applicant.Text("First_Name") + " " + applicant.Text("Last_Name"))
		if full != "" {
			return full
		}
	}
	if s := xmltree.Scalar(data.First("name", "fullName", "customerName", "applicantName", "personName")); s != "" {
		return s
	}
	return notAvailable
}

func extractMobilePhone(data xmltree.Tree) string {
	if applicant := applicantDetails(data); applicant != nil {
		if raw := applicant.Text("MobilePhoneNumber"); raw != "" {
			return CleanPhone(raw)
		}
	}
	if raw := xmltree.Scalar(data.First("mobilePhone", "mobile", "phone", "contactNumber", "phoneNumber")); raw != "" {
		return CleanPhone(raw)
	}
	return notAvailable
}

// accountDetails returns the Experian tradeline blocks, normalizing a
// single block into a one-element list.
func accountDetails(data xmltree.Tree) []any {
	return xmltree.AsList(data.Map("CAIS_Account").Lookup("CAIS_Account_DETAILS"))
}

func extractPAN(data xmltree.Tree) string {
	for _, entry := range accountDetails(data) {
		holder := xmltree.AsTree(entry).Map("CAIS_Holder_Details")
		if pan := holder.Text("Income_TAX_PAN"); pan != "" {
			return cleanPAN(pan)
		}
	}
	if s := xmltree.Scalar(data.First("pan", "panNumber", "pancard", "panCard", "permanentAccountNumber")); s != "" {
		return cleanPAN(s)
	}
	return notAvailable
}

func extractCreditScore(data xmltree.Tree) float64 {
	if v := data.Map("SCORE").Lookup("BureauScore"); xmltree.Truthy(v) {
		return ParseNumeric(v)
	}
	return ParseNumeric(data.First("creditScore", "score", "creditRating", "cibilScore"))
}

func extractReportSummary(data xmltree.Tree) domain.ReportSummary {
	if summary := data.Map("CAIS_Account", "CAIS_Summary"); summary != nil {
		creditAccount := summary.Map("Credit_Account")
		outstanding := summary.Map("Total_Outstanding_Balance")
		return domain.ReportSummary{
			TotalAccounts:                ParseNumeric(creditAccount.Lookup("CreditAccountTotal")),
			ActiveAccounts:               ParseNumeric(creditAccount.Lookup("CreditAccountActive")),
			ClosedAccounts:               ParseNumeric(creditAccount.Lookup("CreditAccountClosed")),
			CurrentBalanceAmount:         ParseNumeric(outstanding.Lookup("Outstanding_Balance_All")),
			SecuredAccountsAmount:        ParseNumeric(outstanding.Lookup("Outstanding_Balance_Secured")),
			UnsecuredAccountsAmount:      ParseNumeric(outstanding.Lookup("Outstanding_Balance_UnSecured")),
			LastSevenDaysCreditEnquiries: ParseNumeric(data.Map("TotalCAPS_Summary").Lookup("TotalCAPSLast7Days")),
		}
	}

	summary := xmltree.AsTree(data.First("reportSummary", "summary", "creditSummary"))
	return domain.ReportSummary{
		TotalAccounts:                ParseNumeric(summary.First("totalAccounts", "totalAccountsCount")),
		ActiveAccounts:               ParseNumeric(summary.First("activeAccounts", "activeAccountsCount")),
		ClosedAccounts:               ParseNumeric(summary.First("closedAccounts", "closedAccountsCount")),
		CurrentBalanceAmount:         ParseNumeric(summary.First("currentBalanceAmount", "currentBalance")),
		SecuredAccountsAmount:        ParseNumeric(summary.First("securedAccountsAmount", "securedBalance")),
		UnsecuredAccountsAmount:      ParseNumeric(summary.First("unsecuredAccountsAmount", "unsecuredBalance")),
		LastSevenDaysCreditEnquiries: ParseNumeric(summary.First("lastSevenDaysCreditEnquiries", "recentEnquiries")),
	}
}

func extractCreditAccounts(data xmltree.Tree) domain.CreditAccountList {
	if details := accountDetails(data); len(details) > 0 {
		accounts := make(domain.CreditAccountList, 0, len(details))
		for _, entry := range details {
			account := xmltree.AsTree(entry)
			accounts = append(accounts, domain.CreditAccount{
				AccountNumber:  scalarOr(account.Lookup("Account_Number"), notAvailable),
				BankName:       scalarOr(account.Lookup("Subscriber_Name"), notAvailable),
				CurrentBalance: ParseNumeric(account.Lookup("Current_Balance")),
				AmountOverdue:  ParseNumeric(account.Lookup("Amount_Past_Due")),
				AccountType:    AccountTypeLabel(account.Text("Account_Type")),
				Status:         AccountStatusLabel(account.Text("Account_Status")),
			})
		}
		return accounts
	}

	// A resolved value that is not actually a list yields an empty
	// list, never an error.
	list, ok := data.First("creditAccounts", "accounts", "creditCards").([]any)
	if !ok {
		return domain.CreditAccountList{}
	}
	accounts := make(domain.CreditAccountList, 0, len(list))
	for _, entry := range list {
		account := xmltree.AsTree(entry)
		accounts = append(accounts, domain.CreditAccount{
			AccountNumber:  scalarOr(account.First("accountNumber", "accountNo", "cardNumber", "creditCardNumber"), notAvailable),
			BankName:       scalarOr(account.First("bankName", "bank", "issuer", "cardIssuer", "institution"), notAvailable),
			CurrentBalance: ParseNumeric(account.First("currentBalance", "balance")),
			AmountOverdue:  ParseNumeric(account.First("amountOverdue", "overdue", "outstanding")),
			AccountType:    scalarOr(account.First("accountType", "type"), "Credit Card"),
			Status:         scalarOr(account.First("status", "accountStatus"), "Active"),
		})
	}
	return accounts
}

var holderAddressLines = []string{
	"First_Line_Of_Address_non_normalized",
	"Second_Line_Of_Address_non_normalized",
	"Third_Line_Of_Address_non_normalized",
}

func extractAddresses(data xmltree.Tree) domain.AddressList {
	if details := accountDetails(data); len(details) > 0 {
		addresses := domain.AddressList{}
		for _, entry := range details {
			holder := xmltree.AsTree(entry).Map("CAIS_Holder_Address_Details")
			if holder == nil {
				continue
			}
			var lines []string
			for _, key := range holderAddressLines {
				if line := holder.Text(key); line != "" {
					lines = append(lines, line)
				}
			}
			country := notAvailable
			if holder.Text("CountryCode_non_normalized") == "IB" {
				country = "India"
			}
			addresses = append(addresses, domain.Address{
				Type:    "Current",
				Address: strings.Join(lines, ", "),
				City:    scalarOr(holder.Lookup("City_non_normalized"), notAvailable),
				State:   scalarOr(holder.Lookup("State_non_normalized"), notAvailable),
				Pincode: scalarOr(holder.Lookup("ZIP_Postal_Code_non_normalized"), notAvailable),
				Country: country,
			})
		}
		return addresses
	}

	list, ok := data.First("addresses", "address").([]any)
	if !ok {
		return domain.AddressList{}
	}
	addresses := make(domain.AddressList, 0, len(list))
	for _, entry := range list {
		address := xmltree.AsTree(entry)
		addresses = append(addresses, domain.Address{
			Type:    scalarOr(address.First("type", "addressType"), "Current"),
			Address: formatAddress(entry),
			City:    scalarOr(address.Lookup("city"), notAvailable),
			State:   scalarOr(address.Lookup("state"), notAvailable),
			Pincode: scalarOr(address.First("pincode", "pinCode"), notAvailable),
			Country: scalarOr(address.Lookup("country"), "India"),
		})
	}
	return addresses
}

// addressSlots lists the candidate sub-fields of a generic address,
// in display order. First non-empty alternative wins per slot.
var addressSlots = [][]string{
	{"line1", "addressLine1"},
	{"line2", "addressLine2"},
	{"area", "locality"},
	{"city"},
	{"state"},
	{"pincode", "pinCode"},
}

// formatAddress assembles a single comma-joined address line. A raw
// string address passes through unchanged.
func formatAddress(entry any) string {
	if s, ok := entry.(string); ok {
		return s
	}
	address := xmltree.AsTree(entry)
	var parts []string
	for _, slot := range addressSlots {
		if part := xmltree.Scalar(address.First(slot...)); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, ", ")
}

func extractReportDate(data xmltree.Tree) time.Time {
	if s := data.Map("Header").Text("ReportDate"); len(s) == 8 {
		if t, err := time.Parse(bureauDateLayout, s); err == nil {
			return t
		}
	}
	if v := data.First("reportDate", "generatedDate", "reportGeneratedOn", "date"); v != nil {
		if t, ok := parseDate(xmltree.Scalar(v)); ok {
			return t
		}
	}
	return time.Now().UTC()
}

func scalarOr(v any, def string) string {
	if s := xmltree.Scalar(v); s != "" {
		return s
	}
	return def
}
