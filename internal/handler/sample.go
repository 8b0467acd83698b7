package handler

// sampleReportXML is a minimal Experian-format document served by the
// sample endpoint so clients can exercise the upload flow end to end.
const sampleReportXML = `<?xml version="1.0" encoding="UTF-8"?>
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
      <Amount_Past_Due>0</Amount_Past_Due>
      <CAIS_Holder_Details>
        <Income_TAX_PAN>ABCDE1234F</Income_TAX_PAN>
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
      <Account_Status>11</Account_Status>
      <Current_Balance>400000</Current_Balance>
      <Amount_Past_Due>0</Amount_Past_Due>
      <CAIS_Holder_Details>
        <Income_TAX_PAN>ABCDE1234F</Income_TAX_PAN>
      </CAIS_Holder_Details>
    </CAIS_Account_DETAILS>
  </CAIS_Account>
  <TotalCAPS_Summary>
    <TotalCAPSLast7Days>2</TotalCAPSLast7Days>
  </TotalCAPS_Summary>
</INProfileResponse>
`
