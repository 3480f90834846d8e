package user

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// DefaultsGenerator supplies values for optional fields a client left out.
type DefaultsGenerator interface {
	Avatar() string
	Birthdate() time.Time
}

// FakeDefaults generates random avatars and adult birthdates.
type FakeDefaults struct{}

// Avatar returns a random GitHub avatar URL.
func (FakeDefaults) Avatar() string {
	return fmt.Sprintf("https://avatars.githubusercontent.com/u/%d", gofakeit.IntRange(1, 99999999))
}

// Birthdate returns a date for someone aged between 18 and 80.
func (FakeDefaults) Birthdate() time.Time {
	now := time.Now().UTC()
	d := gofakeit.DateRange(now.AddDate(-80, 0, 0), now.AddDate(-18, 0, 0))
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
