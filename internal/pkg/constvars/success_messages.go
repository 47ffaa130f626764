package constvars

const (
	NoticeTitleSuccess                = "Success"
	NoticeTitleError                  = "Error"
	NoticeTitleAuthenticationRequired = "Authentication Required"
	NoticeTitleAuthenticationError    = "Authentication Error"

	NoticeVariantDefault     = "default"
	NoticeVariantDestructive = "destructive"
)

const (
	SuccessSpecializationToggledFormat = "Specialization %s successfully"
	SuccessSpecializationDeleted       = "Specialization deleted successfully"

	SpecializationStatusActivated   = "activated"
	SpecializationStatusDeactivated = "deactivated"

	ConfirmDeleteSpecialization = "Are you sure you want to delete this specialization?"
)
