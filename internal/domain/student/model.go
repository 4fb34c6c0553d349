package student

import (
	"time"

	"gorm.io/datatypes"
)

// Admission status of a student record. "Action Required" signals the
// applicant must revise something; it is set manually by an admin and is
// never derived from document rejections.
const (
	StatusSubmitted      = "Submitted"
	StatusVerified       = "Verified"
	StatusAdmitted       = "Admitted"
	StatusActionRequired = "Action Required"
)

// Per-document verification status.
const (
	DocStatusPending  = "Pending"
	DocStatusVerified = "Verified"
	DocStatusRejected = "Rejected"
)

var Categories = []string{"General", "SC", "ST", "OEC", "SEBC"}

var Branches = []string{"CSE", "ECE", "EEE", "ME", "CE"}

func ValidStatus(s string) bool {
	switch s {
	case StatusSubmitted, StatusVerified, StatusAdmitted, StatusActionRequired:
		return true
	}
	return false
}

func ValidDocStatus(s string) bool {
	switch s {
	case DocStatusPending, DocStatusVerified, DocStatusRejected:
		return true
	}
	return false
}

type PersonalDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	DOB     string `json:"dob"`
	Address string `json:"address"`
}

type GuardianDetails struct {
	Name     string `json:"name"`
	Relation string `json:"relation"`
	Phone    string `json:"phone"`
}

type AcademicDetails struct {
	KeamRank     int     `json:"keamRank"`
	KeamRollNo   string  `json:"keamRollNo"`
	PlusTwoMarks float64 `json:"plusTwoMarks"`
	SchoolName   string  `json:"schoolName"`
}

// Student is the admission record for one applicant. The three detail
// groups are stored as JSON columns and replaced wholesale on update;
// a nil group means the applicant has not filled it yet.
type Student struct {
	ID              uint                                 `gorm:"primaryKey" json:"id"`
	KeamAppNumber   string                               `gorm:"uniqueIndex;not null" json:"keamAppNumber"`
	Password        string                               `gorm:"not null" json:"-"`
	PersonalDetails *datatypes.JSONType[PersonalDetails] `json:"personalDetails"`
	GuardianDetails *datatypes.JSONType[GuardianDetails] `json:"guardianDetails"`
	AcademicDetails *datatypes.JSONType[AcademicDetails] `json:"academicDetails"`
	Category        string                               `gorm:"type:varchar(10)" json:"category"`
	Branch          string                               `gorm:"type:varchar(5);index" json:"branch"`
	Documents       []Document                           `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"documents"`
	Status          string                               `gorm:"type:varchar(20);not null;default:'Submitted'" json:"status"`
	AdminRemarks    string                               `gorm:"type:text" json:"adminRemarks"`
	CreatedAt       time.Time                            `json:"createdAt"`
}

// Document is one uploaded certificate entry. Append-only from the
// applicant's side; there is no delete operation.
type Document struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	StudentID     uint      `gorm:"not null;index" json:"studentId"`
	Name          string    `json:"name"`
	URL           string    `json:"url"`
	Status        string    `gorm:"type:varchar(10);not null;default:'Pending'" json:"status"`
	AdminFeedback string    `gorm:"type:text" json:"adminFeedback"`
	CreatedAt     time.Time `json:"createdAt"`
}
