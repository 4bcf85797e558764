package models

// Reimbursement is one expense claim from the upstream reimbursements
// endpoint (JSON).
type Reimbursement struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employeeId"`
	Category      string  `json:"category"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	ExpenseDate   string  `json:"expenseDate"`
	SubmittedDate string  `json:"submittedDate"`
	Status        string  `json:"status"`
	ApprovedBy    string  `json:"approvedBy,omitempty"`
	ApprovedDate  string  `json:"approvedDate,omitempty"`
	Comments      string  `json:"comments,omitempty"`
}
