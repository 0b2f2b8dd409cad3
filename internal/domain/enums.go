package domain

// DocumentRole identifies which of the three procurement documents a record holds.
type DocumentRole string

const (
	RoleContract         DocumentRole = "contract"
	RoleCompletionReport DocumentRole = "completion_report"
	RoleInvoice          DocumentRole = "invoice"
)

// AllRoles lists every document role a session expects before it is complete.
var AllRoles = []DocumentRole{RoleContract, RoleCompletionReport, RoleInvoice}

// ParseRole maps a request string to a DocumentRole, accepting the short "ba" alias.
func ParseRole(s string) (DocumentRole, bool) {
	switch s {
	case string(RoleContract):
		return RoleContract, true
	case string(RoleCompletionReport), "ba":
		return RoleCompletionReport, true
	case string(RoleInvoice):
		return RoleInvoice, true
	}
	return "", false
}

// MatchStatus is the outcome of a single cross-document rule.
// StatusUnknown means an input field was absent, not that the rule failed.
type MatchStatus string

const (
	StatusMatch    MatchStatus = "MATCH"
	StatusNotMatch MatchStatus = "NOT_MATCH"
	StatusUnknown  MatchStatus = "UNKNOWN"
)

// SessionStatus tracks how many of the three documents a session has received.
type SessionStatus string

const (
	SessionStatusPending  SessionStatus = "pending"
	SessionStatusPartial  SessionStatus = "partial"
	SessionStatusComplete SessionStatus = "complete"
)

// FileType represents the allowed file types for upload.
type FileType string

const (
	FileTypePDF  FileType = "pdf"
	FileTypeDOCX FileType = "docx"
	FileTypeJPG  FileType = "jpg"
	FileTypePNG  FileType = "png"
	FileTypeTXT  FileType = "txt"
)

// ContentTypeDOCX is the DOCX MIME type.
const ContentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// AllowedFileTypes maps FileType to its MIME content type.
var AllowedFileTypes = map[FileType]string{
	FileTypePDF:  "application/pdf",
	FileTypeDOCX: ContentTypeDOCX,
	FileTypeJPG:  "image/jpeg",
	FileTypePNG:  "image/png",
	FileTypeTXT:  "text/plain",
}

// AllowedContentTypes maps sniffed MIME content types back to FileType.
// Magic-byte sniffing sees a DOCX as a plain zip container.
var AllowedContentTypes = map[string]FileType{
	"application/pdf": FileTypePDF,
	"application/zip": FileTypeDOCX,
	"image/jpeg":      FileTypeJPG,
	"image/png":       FileTypePNG,
	"text/plain":      FileTypeTXT,
}

// AllowedExtensions maps file extensions (without dot) to FileType.
var AllowedExtensions = map[string]FileType{
	"pdf":  FileTypePDF,
	"docx": FileTypeDOCX,
	"jpg":  FileTypeJPG,
	"jpeg": FileTypeJPG,
	"png":  FileTypePNG,
	"txt":  FileTypeTXT,
}

// FileStatus represents the lifecycle of an uploaded file.
type FileStatus string

const (
	FileStatusPending  FileStatus = "pending"
	FileStatusUploaded FileStatus = "uploaded"
	FileStatusFailed   FileStatus = "failed"
	FileStatusDeleted  FileStatus = "deleted"
)

// LayoutHint tells the recognition engine what kind of page to expect.
type LayoutHint string

const (
	LayoutDocument LayoutHint = "document"
	LayoutTable    LayoutHint = "table"
	LayoutSparse   LayoutHint = "sparse"
)
