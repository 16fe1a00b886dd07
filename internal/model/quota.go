package model

import "time"

// QuotaCheck reports whether a participant's quota code came out in the draw.
type QuotaCheck struct {
	Code         string
	Contemplated bool
}

// Group is a consortium group the participant holds quotas in.
type Group struct {
	CreatedAt time.Time
	Name      string
	Size      int
}
