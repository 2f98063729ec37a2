package fluent

import (
	"fmt"
	"math"
	"strings"

	"github.com/jdziat/fluentkit/pkg/id"
)

// employeeIDPrefix is prepended to the process-wide employee sequence.
const employeeIDPrefix = "EMP"

// Employee is a mutable employee record with chainable setters.
// Each employee receives a unique ID when it is created.
//
// Example:
//
//	e := fluent.NewEmployee().
//	    SetName("Grace Hopper").
//	    SetTitle("Engineer").
//	    SetSalary(120000).
//	    Promote("Rear Admiral", 10)
type Employee struct {
	id         string
	name       string
	title      string
	department string
	salary     float64
	skills     []string
}

// NewEmployee creates an employee with the next ID from id.EmployeeIDs.
func NewEmployee() *Employee {
	return &Employee{id: id.EmployeeIDs.Format(employeeIDPrefix)}
}

// SetName sets the name.
func (e *Employee) SetName(name string) *Employee {
	e.name = name
	return e
}

// SetTitle sets the job title.
func (e *Employee) SetTitle(title string) *Employee {
	e.title = title
	return e
}

// SetDepartment sets the department.
func (e *Employee) SetDepartment(dept string) *Employee {
	e.department = dept
	return e
}

// SetSalary sets the annual salary.
func (e *Employee) SetSalary(salary float64) *Employee {
	e.salary = salary
	return e
}

// AddSkill appends a skill.
func (e *Employee) AddSkill(skill string) *Employee {
	e.skills = append(e.skills, skill)
	return e
}

// Raise increases the salary by percent. Negative percentages lower it.
// The result is rounded to cents.
func (e *Employee) Raise(percent float64) *Employee {
	e.salary = math.Round(e.salary*(1+percent/100)*100) / 100
	return e
}

// Promote sets a new title and raises the salary by percent.
func (e *Employee) Promote(title string, percent float64) *Employee {
	return e.SetTitle(title).Raise(percent)
}

// ID returns the employee ID assigned at creation.
func (e *Employee) ID() string { return e.id }

// Name returns the name.
func (e *Employee) Name() string { return e.name }

// Title returns the job title.
func (e *Employee) Title() string { return e.title }

// Department returns the department.
func (e *Employee) Department() string { return e.department }

// Salary returns the annual salary.
func (e *Employee) Salary() float64 { return e.salary }

// Skills returns a copy of the skills.
func (e *Employee) Skills() []string {
	out := make([]string, len(e.skills))
	copy(out, e.skills)
	return out
}

// String returns a short human-readable description.
func (e *Employee) String() string {
	s := fmt.Sprintf("Employee{id=%s, name=%q, title=%q, department=%q, salary=%.2f",
		e.id, e.name, e.title, e.department, e.salary)
	if len(e.skills) > 0 {
		s += ", skills=[" + strings.Join(e.skills, ", ") + "]"
	}
	return s + "}"
}
