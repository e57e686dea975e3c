package transform

import (
	"strings"

	"github.com/go-gota/gota/series"
)

// Source export columns.
const (
	ColumnRegistration = "Inscrição"
	ColumnOffer        = "Oferta"
	ColumnName         = "Nome"
	ColumnCPF          = "CPF"
	ColumnEmail        = "Email"
	ColumnPassword     = "Senha"
)

// Import columns.
const (
	ColumnUsername  = "username"
	ColumnFirstname = "firstname"
	ColumnLastname  = "lastname"
	ColumnMail      = "email"
	ColumnPass      = "password"
	ColumnCourse    = "course1"
	ColumnType      = "type1"
	ColumnRole      = "role1"
)

// Step names used in errors and logs.
const (
	StepLoad    = "load"
	StepDrop    = "drop columns"
	StepSplit   = "split name"
	StepProject = "project"
	StepAugment = "augment"
	StepSave    = "save"
)

// RequiredColumns lists the source columns every export must carry.
var RequiredColumns = []string{
	ColumnRegistration, ColumnOffer, ColumnName, ColumnCPF, ColumnEmail, ColumnPassword,
}

// OutputColumns is the bulk user upload header, in order.
var OutputColumns = []string{
	ColumnUsername, ColumnFirstname, ColumnLastname, ColumnMail, ColumnPass,
	ColumnCourse, ColumnType, ColumnRole,
}

// projection maps source columns to import columns in output order.
var projection = []struct{ from, to string }{
	{ColumnCPF, ColumnUsername},
	{ColumnFirstname, ColumnFirstname},
	{ColumnLastname, ColumnLastname},
	{ColumnEmail, ColumnMail},
	{ColumnPassword, ColumnPass},
}

// Enrollment holds the constant course metadata added to every row.
type Enrollment struct {
	Course string
	Type   string
	Role   string
}

// DefaultEnrollment is the enrollment for the PSF course.
var DefaultEnrollment = Enrollment{Course: "psf", Type: "manual", Role: "student"}

// DropColumns removes the named columns. Every name must exist.
func DropColumns(t *Table, columns ...string) (*Table, error) {
	if err := t.requireColumns(StepDrop, columns...); err != nil {
		return nil, err
	}
	return t.derive(t.df.Drop(columns), StepDrop)
}

// SplitName replaces Nome with firstname and lastname, split on the first space.
// Everything after that space, including further spaces, is the last name; a
// name without a space has an empty last name.
func SplitName(t *Table) (*Table, error) {
	names, ok := t.Column(ColumnName)
	if !ok {
		return nil, &SchemaError{Step: StepSplit, Column: ColumnName}
	}

	first := make([]string, len(names))
	last := make([]string, len(names))
	for i, name := range names {
		first[i], last[i] = splitFullName(name)
	}

	df := t.df.
		Mutate(series.New(first, series.String, ColumnFirstname)).
		Mutate(series.New(last, series.String, ColumnLastname)).
		Drop(ColumnName)
	return t.derive(df, StepSplit)
}

func splitFullName(name string) (first, last string) {
	first, last, _ = strings.Cut(name, " ")
	return first, last
}

// Project selects and renames the columns of the import schema.
func Project(t *Table) (*Table, error) {
	from := make([]string, len(projection))
	for i, p := range projection {
		from[i] = p.from
	}
	if err := t.requireColumns(StepProject, from...); err != nil {
		return nil, err
	}

	df := t.df.Select(from)
	for _, p := range projection {
		if p.from != p.to {
			df = df.Rename(p.to, p.from)
		}
	}
	return t.derive(df, StepProject)
}

// Augment appends the enrollment columns with the same value on every row.
func Augment(t *Table, e Enrollment) (*Table, error) {
	df := t.df
	for _, c := range []struct{ name, value string }{
		{ColumnCourse, e.Course},
		{ColumnType, e.Type},
		{ColumnRole, e.Role},
	} {
		values := make([]string, t.Len())
		for i := range values {
			values[i] = c.value
		}
		df = df.Mutate(series.New(values, series.String, c.name))
	}
	return t.derive(df, StepAugment)
}
