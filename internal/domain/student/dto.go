package student

type RegisterInput struct {
	KeamAppNumber string `json:"keamAppNumber" binding:"required" example:"KEAM2025001"`
	Password      string `json:"password" binding:"required,min=6" example:"secret123"`
}

type LoginInput struct {
	KeamAppNumber string `json:"keamAppNumber" binding:"required" example:"KEAM2025001"`
	Password      string `json:"password" binding:"required" example:"secret123"`
}

// UpdateStudentInput carries an arbitrary subset of profile fields.
// A nil group is left untouched; a supplied group replaces the stored
// group wholesale.
type UpdateStudentInput struct {
	PersonalDetails *PersonalDetails `json:"personalDetails"`
	GuardianDetails *GuardianDetails `json:"guardianDetails"`
	AcademicDetails *AcademicDetails `json:"academicDetails"`
	Category        *string          `json:"category" binding:"omitempty,oneof=General SC ST OEC SEBC"`
	Branch          *string          `json:"branch" binding:"omitempty,oneof=CSE ECE EEE ME CE"`
}

type VerifyDocumentInput struct {
	StudentID     uint   `json:"studentId" binding:"required"`
	DocumentID    uint   `json:"documentId" binding:"required"`
	Status        string `json:"status" binding:"required"`
	AdminFeedback string `json:"adminFeedback"`
}

type UpdateStatusInput struct {
	StudentID uint   `json:"studentId" binding:"required"`
	Status    string `json:"status" binding:"required"`
}

type UpdateRemarksInput struct {
	StudentID    uint   `json:"studentId" binding:"required"`
	AdminRemarks string `json:"adminRemarks"`
}
