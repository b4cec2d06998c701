package database

const schema = `
CREATE TABLE favorites (
	date TEXT PRIMARY KEY,
	title TEXT NOT NULL,
	explanation TEXT NOT NULL,
	media_type TEXT NOT NULL,
	url TEXT NOT NULL,
	hdurl TEXT,
	thumbnail_url TEXT,
	copyright TEXT,
	service_version TEXT,
	saved_at TIMESTAMP NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX idx_favorites_saved_at ON favorites(saved_at);
`

// migrations contains incremental schema changes applied in order based on
// the current user_version. migrations[0] is empty because version 0 uses the
// base schema.
var migrations = []string{
	"",
}
