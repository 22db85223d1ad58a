package domain

import "context"

// ThemeRepository defines the interface for theme persistence
type ThemeRepository interface {
	// List returns every theme ordered by order_index.
	List(ctx context.Context) ([]Theme, error)

	// ListByName returns every theme ordered by name.
	ListByName(ctx context.Context) ([]Theme, error)

	// GetByID returns nil, nil when the theme does not exist.
	GetByID(ctx context.Context, id int64) (*Theme, error)

	// GetByName returns nil, nil when the theme does not exist.
	GetByName(ctx context.Context, name string) (*Theme, error)

	// NextOrderIndex is max(order_index)+1 over all themes, 0 when there are none.
	NextOrderIndex(ctx context.Context) (int64, error)

	// InsertIfAbsent inserts a theme unless the name is taken. inserted is
	// false, with a zero id, on a name conflict.
	InsertIfAbsent(ctx context.Context, name string, orderIndex int64) (id int64, inserted bool, err error)

	// NameTakenByOther reports whether a theme other than id already uses name.
	NameTakenByOther(ctx context.Context, name string, id int64) (bool, error)

	Rename(ctx context.Context, id int64, name string) (bool, error)
	SetOrderIndex(ctx context.Context, id int64, orderIndex int64) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// QuestionRepository defines the interface for question persistence
type QuestionRepository interface {
	ListAll(ctx context.Context) ([]Question, error)

	// ListByBucket returns the questions of one bucket (nil = unthemed) by order_index.
	ListByBucket(ctx context.Context, themeID *int64) ([]Question, error)

	// NextOrderIndex is max(order_index)+1 inside the bucket, 0 when it is empty.
	NextOrderIndex(ctx context.Context, themeID *int64) (int64, error)

	// Insert stores q and sets q.ID.
	Insert(ctx context.Context, q *Question) error

	UpdateContent(ctx context.Context, id int64, title, answer string) (bool, error)

	// SetPosition moves a question to a bucket and position.
	SetPosition(ctx context.Context, id int64, themeID *int64, orderIndex int64) error

	Delete(ctx context.Context, id int64) error
}

// TransactionManager runs fn inside one all-or-nothing transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ReportStore persists the text artifact of an interview and returns its location.
type ReportStore interface {
	Save(ctx context.Context, report *InterviewReport) (string, error)
}

// ReportIndex keeps a short list of recently finished interviews.
type ReportIndex interface {
	Record(ctx context.Context, summary ReportSummary) error
	Recent(ctx context.Context, limit int64) ([]ReportSummary, error)
}
