package models

import (
	"encoding/json"
	"strings"
)

// Category is one entry of the third-party category vocabulary. The feed is
// inconsistent: an element is either a bare string or an object with slug and
// name fields. Both shapes are normalized here, at the boundary, so the rest
// of the client only ever sees a Category.
type Category struct {
	Slug string
	Name string
}

type categoryObject struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// UnmarshalJSON accepts "smartphones" as well as {"slug":"smartphones","name":"Smartphones"}.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.Slug = s
		c.Name = s
		return nil
	}

	var obj categoryObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	c.Slug = obj.Slug
	c.Name = obj.Name
	if c.Name == "" {
		c.Name = obj.Slug
	}
	return nil
}

// Display returns the name with the first letter upper-cased, matching how
// the storefront renders vocabulary entries.
func (c Category) Display() string {
	if c.Name == "" {
		return ""
	}
	return strings.ToUpper(c.Name[:1]) + c.Name[1:]
}

// ContainsCategory reports whether name is a member of the vocabulary.
func ContainsCategory(vocabulary []Category, name string) bool {
	for _, c := range vocabulary {
		if c.Name == name {
			return true
		}
	}
	return false
}
