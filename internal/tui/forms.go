package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/DanielWebDeveloper25/e-commerce/internal/account"
	"github.com/DanielWebDeveloper25/e-commerce/internal/checkout"
	"github.com/DanielWebDeveloper25/e-commerce/internal/tui/view"
)

// Auth form field indexes.
const (
	authName = iota
	authEmail
	authPassword
)

const inputCharLimit = 64

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = inputCharLimit
	ti.Width = view.ModalWidth - 4
	return ti
}

func newSearchInput() textinput.Model {
	ti := textinput.New()
	ti.Placeholder = "Search products..."
	ti.Prompt = ""
	ti.CharLimit = inputCharLimit
	ti.Width = 28
	return ti
}

func newAuthInputs() []textinput.Model {
	password := newInput("••••••••")
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	return []textinput.Model{
		newInput("Your name"),
		newInput("you@example.com"),
		password,
	}
}

func newCheckoutInputs() []textinput.Model {
	fields := checkout.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		inputs[i] = newInput(f.Placeholder)
	}
	return inputs
}

// authFieldIndexes lists the visible auth fields for mode, in tab order.
func authFieldIndexes(mode account.AuthMode) []int {
	if mode == account.ModeSignup {
		return []int{authName, authEmail, authPassword}
	}
	return []int{authEmail, authPassword}
}

func authLabel(i int) string {
	switch i {
	case authName:
		return "Full Name"
	case authEmail:
		return "Email"
	default:
		return "Password"
	}
}

func credentialsFrom(inputs []textinput.Model) account.Credentials {
	return account.Credentials{
		Name:     inputs[authName].Value(),
		Email:    inputs[authEmail].Value(),
		Password: inputs[authPassword].Value(),
	}
}

func detailsFrom(inputs []textinput.Model) checkout.Details {
	values := make([]string, len(inputs))
	for i, in := range inputs {
		values[i] = in.Value()
	}
	return checkout.DetailsFromValues(values)
}

// focusOnly focuses inputs[i] and blurs the rest.
func focusOnly(inputs []textinput.Model, i int) {
	for j := range inputs {
		if j == i {
			inputs[j].Focus()
		} else {
			inputs[j].Blur()
		}
	}
}

// cycle moves from cur to the next (step 1) or previous (step -1) entry of
// order, wrapping.
func cycle(order []int, cur, step int) int {
	pos := 0
	for i, v := range order {
		if v == cur {
			pos = i
			break
		}
	}
	n := len(order)
	return order[((pos+step)%n+n)%n]
}
