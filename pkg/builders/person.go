package builders

import (
	"fmt"
	"slices"
	"strings"
)

// Person is an immutable person record produced by PersonBuilder.
// The zero value is a valid, empty person.
type Person struct {
	firstName string
	lastName  string
	age       int
	email     string
	phone     string
	city      string
	hobbies   []string
}

// FirstName returns the first name, or "" if it was never set.
func (p Person) FirstName() string { return p.firstName }

// LastName returns the last name, or "" if it was never set.
func (p Person) LastName() string { return p.lastName }

// FullName returns the first and last name separated by a space.
// Missing parts are left out.
func (p Person) FullName() string {
	return strings.TrimSpace(p.firstName + " " + p.lastName)
}

// Age returns the age, or 0 if it was never set.
func (p Person) Age() int { return p.age }

// Email returns the email address, or "" if it was never set.
func (p Person) Email() string { return p.email }

// Phone returns the phone number, or "" if it was never set.
func (p Person) Phone() string { return p.phone }

// City returns the city, or "" if it was never set.
func (p Person) City() string { return p.city }

// Hobbies returns a copy of the hobbies. It is never nil.
func (p Person) Hobbies() []string {
	out := make([]string, len(p.hobbies))
	copy(out, p.hobbies)
	return out
}

// String returns a short human-readable description.
func (p Person) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Person{name=%q, age=%d", p.FullName(), p.age)
	if p.email != "" {
		fmt.Fprintf(&b, ", email=%q", p.email)
	}
	if p.phone != "" {
		fmt.Fprintf(&b, ", phone=%q", p.phone)
	}
	if p.city != "" {
		fmt.Fprintf(&b, ", city=%q", p.city)
	}
	if len(p.hobbies) > 0 {
		fmt.Fprintf(&b, ", hobbies=[%s]", strings.Join(p.hobbies, ", "))
	}
	b.WriteString("}")
	return b.String()
}

// ToBuilder returns a new builder seeded with this person's values.
// Changes made through the builder do not affect p.
func (p Person) ToBuilder() *PersonBuilder {
	return &PersonBuilder{
		firstName: p.firstName,
		lastName:  p.lastName,
		age:       p.age,
		email:     p.email,
		phone:     p.phone,
		city:      p.city,
		hobbies:   slices.Clone(p.hobbies),
	}
}

// PersonBuilder accumulates person fields across chained calls.
// A builder should only be used from a single goroutine.
//
// Example:
//
//	p := NewPerson().
//	    FirstName("Ada").
//	    Age(30).
//	    Build()
//
//	p.City() // "" (never set)
type PersonBuilder struct {
	firstName string
	lastName  string
	age       int
	email     string
	phone     string
	city      string
	hobbies   []string
}

// NewPerson creates a new PersonBuilder with every field at its default.
func NewPerson() *PersonBuilder {
	return &PersonBuilder{}
}

// FirstName sets the first name.
func (b *PersonBuilder) FirstName(name string) *PersonBuilder {
	b.firstName = name
	return b
}

// LastName sets the last name.
func (b *PersonBuilder) LastName(name string) *PersonBuilder {
	b.lastName = name
	return b
}

// Age sets the age.
func (b *PersonBuilder) Age(age int) *PersonBuilder {
	b.age = age
	return b
}

// Email sets the email address.
func (b *PersonBuilder) Email(email string) *PersonBuilder {
	b.email = email
	return b
}

// Phone sets the phone number.
func (b *PersonBuilder) Phone(phone string) *PersonBuilder {
	b.phone = phone
	return b
}

// City sets the city.
func (b *PersonBuilder) City(city string) *PersonBuilder {
	b.city = city
	return b
}

// Hobbies replaces the hobby list.
func (b *PersonBuilder) Hobbies(hobbies ...string) *PersonBuilder {
	b.hobbies = slices.Clone(hobbies)
	return b
}

// AddHobby appends one hobby.
func (b *PersonBuilder) AddHobby(hobby string) *PersonBuilder {
	b.hobbies = append(b.hobbies, hobby)
	return b
}

// Build returns a Person holding the builder's current values.
// The builder stays usable; later calls do not affect the returned Person.
func (b *PersonBuilder) Build() Person {
	return Person{
		firstName: b.firstName,
		lastName:  b.lastName,
		age:       b.age,
		email:     b.email,
		phone:     b.phone,
		city:      b.city,
		hobbies:   slices.Clone(b.hobbies),
	}
}
