package fahrinfo

import "encoding/json"

func (l *Locations) UnmarshalJSON(data []byte) error {
	if err := requireFields("Locations", data, []string{"locations"}); err != nil {
		return err
	}

	type locations Locations
	return json.Unmarshal(data, (*locations)(l))
}

// ConnectionList has no required fields: a missing or empty connectionList is
// the upstream answer for "no route".
func (c *ConnectionList) UnmarshalJSON(data []byte) error {
	type connectionList ConnectionList
	if err := json.Unmarshal(data, (*connectionList)(c)); err != nil {
		return err
	}

	if c.ConnectionList == nil {
		c.ConnectionList = []Connection{}
	}
	return nil
}
