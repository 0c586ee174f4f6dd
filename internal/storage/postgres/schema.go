package postgres

// Schema is the full DDL for the service. PostGIS provides the spatial index
// behind the nearby query; voter sets live in uuid arrays so a vote is a single
// row write under a row lock.
const Schema = `
CREATE EXTENSION IF NOT EXISTS postgis;

CREATE TABLE IF NOT EXISTS users (
	id            uuid PRIMARY KEY,
	username      text NOT NULL UNIQUE,
	email         text NOT NULL UNIQUE,
	password_hash text NOT NULL,
	role          text NOT NULL DEFAULT 'citizen',
	display_name  text NOT NULL DEFAULT '',
	bio           text NOT NULL DEFAULT '',
	avatar_url    text NOT NULL DEFAULT '',
	reputation    int  NOT NULL DEFAULT 0,
	badges        jsonb NOT NULL DEFAULT '[]',
	created_at    timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS reports (
	id          uuid PRIMARY KEY,
	user_id     uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	hazard_type text NOT NULL,
	description text NOT NULL,
	location    geography(Point, 4326) NOT NULL,
	severity    text NOT NULL DEFAULT 'medium',
	media       text[] NOT NULL DEFAULT '{}',
	status      text NOT NULL DEFAULT 'reported',
	created_at  timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS reports_location_idx ON reports USING GIST (location);
CREATE INDEX IF NOT EXISTS reports_created_at_idx ON reports (created_at DESC);

CREATE TABLE IF NOT EXISTS posts (
	id            uuid PRIMARY KEY,
	title         text NOT NULL,
	content       text NOT NULL,
	author_id     uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	type          text NOT NULL,
	hazard_type   text,
	location      geography(Point, 4326) NOT NULL,
	location_name text NOT NULL DEFAULT '',
	severity      text NOT NULL DEFAULT 'medium',
	status        text NOT NULL DEFAULT 'reported',
	media         jsonb NOT NULL DEFAULT '[]',
	upvoters      uuid[] NOT NULL DEFAULT '{}',
	downvoters    uuid[] NOT NULL DEFAULT '{}',
	score         int NOT NULL DEFAULT 0,
	share_count   int NOT NULL DEFAULT 0,
	sharers       uuid[] NOT NULL DEFAULT '{}',
	comment_count int NOT NULL DEFAULT 0,
	tags          text[] NOT NULL DEFAULT '{}',
	nlp           jsonb,
	created_at    timestamptz NOT NULL DEFAULT now(),
	updated_at    timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS posts_location_idx ON posts USING GIST (location);
CREATE INDEX IF NOT EXISTS posts_created_at_idx ON posts (created_at DESC);
CREATE INDEX IF NOT EXISTS posts_score_idx ON posts (score DESC);
CREATE INDEX IF NOT EXISTS posts_author_idx ON posts (author_id, created_at DESC);

CREATE TABLE IF NOT EXISTS comments (
	id         uuid PRIMARY KEY,
	post_id    uuid NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
	author_id  uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
	content    text NOT NULL,
	parent_id  uuid REFERENCES comments(id) ON DELETE CASCADE,
	upvoters   uuid[] NOT NULL DEFAULT '{}',
	downvoters uuid[] NOT NULL DEFAULT '{}',
	score      int NOT NULL DEFAULT 0,
	created_at timestamptz NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS comments_post_idx ON comments (post_id, created_at DESC);
CREATE INDEX IF NOT EXISTS comments_parent_idx ON comments (parent_id);
`
