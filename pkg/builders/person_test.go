package builders

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPersonBuilder(t *testing.T) {
	t.Run("set fields and defaults", func(t *testing.T) {
		p := NewPerson().FirstName("Ada").Age(30).Build()

		if p.FirstName() != "Ada" {
			t.Errorf("FirstName() = %q, want Ada", p.FirstName())
		}
		if p.Age() != 30 {
			t.Errorf("Age() = %d, want 30", p.Age())
		}
		if p.City() != "" {
			t.Errorf("City() = %q, want empty default", p.City())
		}
		if p.LastName() != "" || p.Email() != "" || p.Phone() != "" {
			t.Errorf("unset strings should be empty, got %q %q %q", p.LastName(), p.Email(), p.Phone())
		}
		if h := p.Hobbies(); h == nil || len(h) != 0 {
			t.Errorf("Hobbies() = %#v, want empty non-nil slice", h)
		}
	})

	t.Run("last write wins", func(t *testing.T) {
		p := NewPerson().
			FirstName("Ada").
			City("London").
			FirstName("Grace").
			Age(20).
			Age(85).
			Build()

		if p.FirstName() != "Grace" {
			t.Errorf("FirstName() = %q, want Grace", p.FirstName())
		}
		if p.Age() != 85 {
			t.Errorf("Age() = %d, want 85", p.Age())
		}
		if p.City() != "London" {
			t.Errorf("City() = %q, want London", p.City())
		}
	})

	t.Run("chaining returns the same builder", func(t *testing.T) {
		b := NewPerson()
		if b.FirstName("a") != b || b.LastName("b") != b || b.Age(1) != b ||
			b.Email("e") != b || b.Phone("p") != b || b.City("c") != b ||
			b.Hobbies("x") != b || b.AddHobby("y") != b {
			t.Error("every setter should return its receiver")
		}
	})

	t.Run("setters after build do not affect built value", func(t *testing.T) {
		b := NewPerson().FirstName("Ada").Hobbies("chess", "math")
		first := b.Build()

		b.FirstName("Grace").Age(40).AddHobby("navy")
		b.Hobbies("sailing")

		if first.FirstName() != "Ada" {
			t.Errorf("FirstName() = %q, want Ada", first.FirstName())
		}
		if first.Age() != 0 {
			t.Errorf("Age() = %d, want 0", first.Age())
		}
		if diff := cmp.Diff([]string{"chess", "math"}, first.Hobbies()); diff != "" {
			t.Errorf("Hobbies() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("append after build does not leak into built value", func(t *testing.T) {
		hobbies := make([]string, 1, 8)
		hobbies[0] = "chess"
		b := NewPerson().Hobbies(hobbies...)
		first := b.Build()
		b.AddHobby("go")
		second := b.Build()

		if len(first.Hobbies()) != 1 {
			t.Errorf("first.Hobbies() = %v, want [chess]", first.Hobbies())
		}
		if diff := cmp.Diff([]string{"chess", "go"}, second.Hobbies()); diff != "" {
			t.Errorf("second.Hobbies() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("caller slice is not aliased", func(t *testing.T) {
		hobbies := []string{"chess"}
		p := NewPerson().Hobbies(hobbies...).Build()
		hobbies[0] = "poker"

		if p.Hobbies()[0] != "chess" {
			t.Errorf("Hobbies()[0] = %q, want chess", p.Hobbies()[0])
		}
	})

	t.Run("accessor copy is not aliased", func(t *testing.T) {
		p := NewPerson().Hobbies("chess").Build()
		got := p.Hobbies()
		got[0] = "poker"

		if p.Hobbies()[0] != "chess" {
			t.Errorf("Hobbies()[0] = %q, want chess", p.Hobbies()[0])
		}
	})

	t.Run("independent builders", func(t *testing.T) {
		a := NewPerson().FirstName("Ada")
		b := NewPerson().FirstName("Grace")
		a.City("London").AddHobby("math")

		pb := b.Build()
		if pb.City() != "" || len(pb.Hobbies()) != 0 {
			t.Errorf("builder b picked up state from a: %v", pb)
		}
		if pb.FirstName() != "Grace" {
			t.Errorf("FirstName() = %q, want Grace", pb.FirstName())
		}
	})

	t.Run("repeated builds are equal", func(t *testing.T) {
		b := NewPerson().FirstName("Ada").LastName("Lovelace").Hobbies("math")
		if diff := cmp.Diff(b.Build(), b.Build(), cmp.AllowUnexported(Person{})); diff != "" {
			t.Errorf("builds differ (-first +second):\n%s", diff)
		}
	})
}

func TestPerson_FullName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Ada", "Lovelace", "Ada Lovelace"},
		{"Ada", "", "Ada"},
		{"", "Lovelace", "Lovelace"},
		{"", "", ""},
	}

	for _, tt := range tests {
		p := NewPerson().FirstName(tt.first).LastName(tt.last).Build()
		if got := p.FullName(); got != tt.want {
			t.Errorf("FullName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}

func TestPerson_String(t *testing.T) {
	p := NewPerson().
		FirstName("Ada").
		LastName("Lovelace").
		Age(36).
		City("London").
		Hobbies("math", "poetry").
		Build()

	want := `Person{name="Ada Lovelace", age=36, city="London", hobbies=[math, poetry]}`
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	var zero Person
	if got := zero.String(); got != `Person{name="", age=0}` {
		t.Errorf("zero String() = %q", got)
	}
}

func TestPerson_ToBuilder(t *testing.T) {
	original := NewPerson().FirstName("Ada").Age(36).Hobbies("math").Build()

	derived := original.ToBuilder().Age(37).AddHobby("poetry").Build()

	if original.Age() != 36 || len(original.Hobbies()) != 1 {
		t.Errorf("original changed: %v", original)
	}
	if derived.FirstName() != "Ada" || derived.Age() != 37 {
		t.Errorf("derived = %v, want Ada aged 37", derived)
	}
	if diff := cmp.Diff([]string{"math", "poetry"}, derived.Hobbies()); diff != "" {
		t.Errorf("derived hobbies mismatch (-want +got):\n%s", diff)
	}
}

func TestPersonBuilder_ArbitraryOrderNeverFails(t *testing.T) {
	steps := []func(*PersonBuilder){
		func(b *PersonBuilder) { b.FirstName("") },
		func(b *PersonBuilder) { b.Age(-5) },
		func(b *PersonBuilder) { b.Hobbies() },
		func(b *PersonBuilder) { b.AddHobby("") },
		func(b *PersonBuilder) { b.Email("not-an-email") },
		func(b *PersonBuilder) { b.Build() },
		func(b *PersonBuilder) { b.City("x") },
	}

	// Every rotation of the step list runs without panicking.
	for start := range steps {
		b := NewPerson()
		for i := range steps {
			steps[(start+i)%len(steps)](b)
		}
		_ = b.Build()
	}
}
