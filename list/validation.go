package list

import "unicode/utf8"

// ValidateListName checks a new list name against the existing lists.
func ValidateListName(name string, lists []List) error {
	return validateListName(name, lists, 0)
}

// ValidateListRename checks a new name for the list with the given id.
// The list itself is excluded from the uniqueness check, so keeping the
// current name is always valid.
func ValidateListRename(id int, name string, lists []List) error {
	return validateListName(name, lists, id)
}

func validateListName(name string, lists []List, self int) error {
	if !validNameLength(name) {
		return &ValidationError{Message: MsgListNameLength}
	}
	for _, existing := range lists {
		if existing.ID == self && self != 0 {
			continue
		}
		if existing.Name == name {
			return &ValidationError{Message: MsgListNameUnique}
		}
	}
	return nil
}

// ValidateTodoName checks a todo name. Todo names need not be unique.
func ValidateTodoName(name string) error {
	if !validNameLength(name) {
		return &ValidationError{Message: MsgTodoNameLength}
	}
	return nil
}

func validNameLength(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= MinNameLength && n <= MaxNameLength
}
