package api

import "encoding/json"

// UnreadCountResponse is the unread-notification counter. The backend has
// shipped this payload in two shapes over time ({"count": N} and a bare
// integer), so decoding tries both and defaults to zero rather than ever
// failing; a broken badge count must not take down the whole response.
type UnreadCountResponse struct {
	Count int
}

// UnmarshalJSON accepts {"count": N}, a bare integer, or anything else as
// zero. Never returns an error.
func (u *UnreadCountResponse) UnmarshalJSON(data []byte) error {
	var wrapped struct {
		Count *int `json:"count"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Count != nil {
		u.Count = *wrapped.Count
		return nil
	}
	var bare int
	if err := json.Unmarshal(data, &bare); err == nil {
		u.Count = bare
		return nil
	}
	u.Count = 0
	return nil
}

// MarshalJSON writes the wrapped form, which is what current backends emit.
func (u UnreadCountResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Count int `json:"count"`
	}{Count: u.Count})
}
