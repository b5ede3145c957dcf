package memory

import "fmt"

func errDuplicate(field string, value interface{}) error {
	return fmt.Errorf("duplicate %s %v", field, value)
}

func errForeignKey(resource string, id interface{}) error {
	return fmt.Errorf("%s %v does not exist", resource, id)
}
