// Package fixtures generates synthetic bulk upload files for exercising an
// import without real student data.
package fixtures

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/leapstack-labs/leapimport/internal/fsutil"
)

// Default fixture file names.
const (
	LoginFile = "login.csv"
	UsersFile = "usuarios.csv"
)

// Options controls the generated values. Zero values fall back to the defaults.
type Options struct {
	Count       int
	Password    string
	Course      string
	EmailDomain string
}

// DefaultOptions returns the options that produce the reference fixture files.
func DefaultOptions() Options {
	return Options{
		Count:       1000,
		Password:    "moodle",
		Course:      "m1",
		EmailDomain: "uni.com",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	switch {
	case o.Count == 0:
		o.Count = d.Count
	case o.Count < 0:
		o.Count = 0
	}
	if o.Password == "" {
		o.Password = d.Password
	}
	if o.Course == "" {
		o.Course = d.Course
	}
	if o.EmailDomain == "" {
		o.EmailDomain = d.EmailDomain
	}
	return o
}

// Login is a username/password pair.
type Login struct {
	Username string `csv:"username"`
	Password string `csv:"password"`
}

// User is a complete upload record enrolled in one course.
type User struct {
	Username  string `csv:"username"`
	Firstname string `csv:"firstname"`
	Lastname  string `csv:"lastname"`
	Email     string `csv:"email"`
	Password  string `csv:"password"`
	Course1   string `csv:"course1"`
	Type1     string `csv:"type1"`
	Role1     string `csv:"role1"`
}

func username(i int) string {
	return strconv.Itoa(i) + "s"
}

// Logins returns the login records 1s..{Count}s.
func Logins(opts Options) []Login {
	opts = opts.withDefaults()
	logins := make([]Login, opts.Count)
	for i := range logins {
		logins[i] = Login{Username: username(i + 1), Password: opts.Password}
	}
	return logins
}

// Users returns the user records for students 1..Count.
func Users(opts Options) []User {
	opts = opts.withDefaults()
	users := make([]User, opts.Count)
	for i := range users {
		n := strconv.Itoa(i + 1)
		users[i] = User{
			Username:  username(i + 1),
			Firstname: "student",
			Lastname:  n,
			Email:     n + "email@" + opts.EmailDomain,
			Password:  opts.Password,
			Course1:   opts.Course,
			Type1:     "manual",
			Role1:     "student",
		}
	}
	return users
}

// WriteLogins writes the login fixture as CSV to w.
func WriteLogins(w io.Writer, opts Options) error {
	logins := Logins(opts)
	return marshal(&logins, w)
}

// WriteUsers writes the user fixture as CSV to w.
func WriteUsers(w io.Writer, opts Options) error {
	users := Users(opts)
	return marshal(&users, w)
}

func marshal(in any, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := gocsv.MarshalCSV(in, cw); err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// GenerateLogins writes the login fixture to path.
func GenerateLogins(path string, opts Options) error {
	if err := fsutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		return WriteLogins(w, opts)
	}); err != nil {
		return fmt.Errorf("failed to generate %s: %w", path, err)
	}
	return nil
}

// GenerateUsers writes the user fixture to path.
func GenerateUsers(path string, opts Options) error {
	if err := fsutil.WriteFileAtomic(path, 0o644, func(w io.Writer) error {
		return WriteUsers(w, opts)
	}); err != nil {
		return fmt.Errorf("failed to generate %s: %w", path, err)
	}
	return nil
}
