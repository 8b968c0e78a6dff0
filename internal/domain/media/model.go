package media

import "time"

type FileType string

const (
	TypeImage FileType = "image"
	TypeAudio FileType = "audio"
	TypeVideo FileType = "video"
	TypeOther FileType = "other"
)

type Media struct {
	ID        string
	NoteID    string
	UserID    string
	FileName  string
	FilePath  string
	FileType  FileType
	FileSize  int64
	MimeType  string
	CreatedAt time.Time
}

type View struct {
	ID        string    `json:"id"`
	FileName  string    `json:"fileName"`
	FilePath  string    `json:"filePath"`
	FileType  FileType  `json:"fileType"`
	FileSize  int64     `json:"fileSize"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m Media) ToView() View {
	return View{
		ID:        m.ID,
		FileName:  m.FileName,
		FilePath:  m.FilePath,
		FileType:  m.FileType,
		FileSize:  m.FileSize,
		MimeType:  m.MimeType,
		CreatedAt: m.CreatedAt,
	}
}

func Views(items []Media) []View {
	views := make([]View, len(items))
	for i, m := range items {
		views[i] = m.ToView()
	}
	return views
}

// CleanupEntry records an object whose compensating delete failed and must be
// retried out of band.
type CleanupEntry struct {
	ID         int64
	ObjectPath string
	CreatedAt  time.Time
}
