package models

// Leave is one leave application as delivered by the upstream leaves
// endpoint (JSON).
type Leave struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employeeId"`
	Type         string `json:"type"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	Days         int    `json:"days"`
	Reason       string `json:"reason"`
	Status       string `json:"status"`
	AppliedDate  string `json:"appliedDate"`
	ApprovedBy   string `json:"approvedBy,omitempty"`
	ApprovedDate string `json:"approvedDate,omitempty"`
	Comments     string `json:"comments,omitempty"`
}

// LeaveBalance is the remaining quota per leave category.
type LeaveBalance struct {
	EmployeeID    string `json:"employeeId"`
	AnnualLeave   int    `json:"annualLeave"`
	SickLeave     int    `json:"sickLeave"`
	PersonalLeave int    `json:"personalLeave"`
	CarryForward  int    `json:"carryForward,omitempty"`
}
