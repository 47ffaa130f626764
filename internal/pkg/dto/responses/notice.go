package responses

import "konsulin-admin-console/internal/pkg/constvars"

// Notice is a user-visible message produced at a handler boundary.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

func (n Notice) IsDestructive() bool {
	return n.Variant == constvars.NoticeVariantDestructive
}

func NewSuccessNotice(description string) Notice {
	return Notice{
		Title:       constvars.NoticeTitleSuccess,
		Description: description,
		Variant:     constvars.NoticeVariantDefault,
	}
}

func NewErrorNotice(title, description string) Notice {
	return Notice{
		Title:       title,
		Description: description,
		Variant:     constvars.NoticeVariantDestructive,
	}
}
