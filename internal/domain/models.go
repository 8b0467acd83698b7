package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CreditReport is the normalized record extracted from an uploaded XML
// credit bureau report. At most one record exists per PAN; re-uploading
// a report for a known PAN replaces the extracted fields in place.
type CreditReport struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	MobilePhone string    `db:"mobile_phone" json:"mobile_phone"`
	PAN         string    `db:"pan" json:"pan"`
	CreditScore float64   `db:"credit_score" json:"credit_score"`

	ReportSummary `json:"report_summary"`

	CreditAccounts CreditAccountList `db:"credit_accounts" json:"credit_accounts"`
	Addresses      AddressList       `db:"addresses" json:"addresses"`
	ReportDate     time.Time         `db:"report_date" json:"report_date"`

	OriginalFileName string    `db:"original_file_name" json:"original_file_name"`
	ProcessedAt      time.Time `db:"processed_at" json:"processed_at"`
	RawFileKey       string    `db:"raw_file_key" json:"-"`

	// RawTree is the parsed XML document retained for audit. Excluded
	// from list queries to keep payloads small.
	RawTree json.RawMessage `db:"raw_tree" json:"raw_tree,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// MaskedPAN returns the PAN with the middle digits hidden
// (ABCDE1234F -> ABCDE****F). Non-standard-length PANs pass through.
func (r *CreditReport) MaskedPAN() string {
	if len(r.PAN) == 10 {
		return r.PAN[:5] + strings.Repeat("*", 4) + r.PAN[9:]
	}
	return r.PAN
}

// ReportSummary holds the aggregate account counts and balances
// reported by the bureau. All values default to zero.
type ReportSummary struct {
	TotalAccounts                float64 `db:"total_accounts" json:"total_accounts"`
	ActiveAccounts               float64 `db:"active_accounts" json:"active_accounts"`
	ClosedAccounts               float64 `db:"closed_accounts" json:"closed_accounts"`
	CurrentBalanceAmount         float64 `db:"current_balance_amount" json:"current_balance_amount"`
	SecuredAccountsAmount        float64 `db:"secured_accounts_amount" json:"secured_accounts_amount"`
	UnsecuredAccountsAmount      float64 `db:"unsecured_accounts_amount" json:"unsecured_accounts_amount"`
	LastSevenDaysCreditEnquiries float64 `db:"last_seven_days_credit_enquiries" json:"last_seven_days_credit_enquiries"`
}

// CreditAccount is a single tradeline from the report.
type CreditAccount struct {
	AccountNumber  string  `json:"account_number"`
	BankName       string  `json:"bank_name"`
	CurrentBalance float64 `json:"current_balance"`
	AmountOverdue  float64 `json:"amount_overdue"`
	AccountType    string  `json:"account_type"`
	Status         string  `json:"status"`
}

// Address is a single address block from the report.
type Address struct {
	Type    string `json:"type"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
	Country string `json:"country"`
}

// CreditAccountList stores tradelines as a jsonb column.
type CreditAccountList []CreditAccount

// Value implements driver.Valuer.
func (l CreditAccountList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(CreditAccountList{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *CreditAccountList) Scan(src any) error {
	return scanJSON(src, l)
}

// AddressList stores addresses as a jsonb column.
type AddressList []Address

// Value implements driver.Valuer.
func (l AddressList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal(AddressList{})
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *AddressList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst any) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return fmt.Errorf("cannot scan %T into %T", src, dst)
	}
}

// IngestOutcome records the result of processing one uploaded file in
// a batch. One file's failure never aborts its siblings.
type IngestOutcome struct {
	FileName string     `json:"file_name"`
	Success  bool       `json:"success"`
	ReportID *uuid.UUID `json:"report_id,omitempty"`
	Name     string     `json:"name,omitempty"`
	PAN      string     `json:"pan,omitempty"`
	Created  bool       `json:"-"`
	Error    string     `json:"error,omitempty"`
	Details  []string   `json:"details,omitempty"`
}

// ReportStats holds aggregate statistics across all stored reports.
type ReportStats struct {
	TotalReports        int     `db:"total_reports" json:"total_reports"`
	AvgCreditScore      float64 `db:"avg_credit_score" json:"avg_credit_score"`
	MaxCreditScore      float64 `db:"max_credit_score" json:"max_credit_score"`
	MinCreditScore      float64 `db:"min_credit_score" json:"min_credit_score"`
	TotalCurrentBalance float64 `db:"total_current_balance" json:"total_current_balance"`
	TotalAccounts       float64 `db:"total_accounts" json:"total_accounts"`
	TotalActiveAccounts float64 `db:"total_active_accounts" json:"total_active_accounts"`
	RecentReports       int     `db:"recent_reports" json:"recent_reports"`
}

// ScoreBucket is one band of the credit score distribution.
type ScoreBucket struct {
	Bucket     string  `db:"bucket" json:"bucket"`
	Count      int     `db:"count" json:"count"`
	AvgBalance float64 `db:"avg_balance" json:"avg_balance"`
}
