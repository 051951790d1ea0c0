package validator

import "golang.org/x/exp/slices"

type Validator struct {
	Errors map[string]string
}

func NewValidator() *Validator {
	return &Validator{
		Errors: make(map[string]string),
	}
}

// Add records msg for key unless key already has a message.
func (v *Validator) Add(key, msg string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = msg
	}
}

func (v *Validator) Check(result bool, key, msg string) {
	if !result {
		v.Add(key, msg)
	}
}

func (v *Validator) Remove(key string) {
	delete(v.Errors, key)
}

func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// Fields returns the names of the invalid fields in sorted order.
func (v *Validator) Fields() []string {
	keys := make([]string, 0, len(v.Errors))
	for key := range v.Errors {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
