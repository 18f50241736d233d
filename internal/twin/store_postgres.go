package twin

import (
	"context"
	"database/sql"
	"errors"
)

type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore returns a Store backed by the tenants table. Lookups are
// point reads on the unique public_bot_id index; the gateway never writes.
func NewPostgresStore(db *sql.DB) Store {
	return &postgresStore{db: db}
}

func (s *postgresStore) Lookup(ctx context.Context, publicBotID string) (*TenantRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT
			public_bot_id,
			COALESCE(display_name, ''),
			COALESCE(persona_mode, ''),
			COALESCE(bio, ''),
			COALESCE(skills, ''),
			COALESCE(expertise, ''),
			COALESCE(tone, ''),
			COALESCE(opinions, ''),
			COALESCE(linkedin, ''),
			COALESCE(github, ''),
			COALESCE(twitter, ''),
			COALESCE(resume_link, ''),
			COALESCE(gemini_api_key, '')
		FROM tenants
		WHERE public_bot_id = $1
	`, publicBotID)

	var rec TenantRecord
	var mode string
	if err := row.Scan(
		&rec.PublicBotID,
		&rec.DisplayName,
		&mode,
		&rec.Persona.Bio,
		&rec.Persona.Skills,
		&rec.Persona.Expertise,
		&rec.Persona.Tone,
		&rec.Persona.Opinions,
		&rec.Persona.LinkedIn,
		&rec.Persona.GitHub,
		&rec.Persona.Twitter,
		&rec.Persona.ResumeLink,
		&rec.Credential,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTenantNotFound
		}
		return nil, err
	}

	if mode == string(ModeFirstPerson) {
		rec.Mode = ModeFirstPerson
	} else {
		rec.Mode = ModeThirdPerson
	}

	return &rec, nil
}
