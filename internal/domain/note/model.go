package note

import "time"

type Note struct {
	ID        string
	UserID    string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// View is the client-facing shape of a note. Every handler path (list, single
// fetch, create, update, search) goes through ToView so the translation cannot
// drift between routes.
type View struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n Note) ToView() View {
	return View{
		ID:        n.ID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func Views(notes []Note) []View {
	views := make([]View, len(notes))
	for i, n := range notes {
		views[i] = n.ToView()
	}
	return views
}
