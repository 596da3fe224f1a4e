package shared

import "encoding/json"

// Wire encoding for the request/response protocol: one JSON object per
// line, in both directions.

func (c Command) ToJSON() ([]byte, error) {
	return json.Marshal(c)
}

func CommandFromJSON(data []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(data, &cmd); err != nil {
		return Command{}, err
	}
	return cmd, nil
}

func (r Response) ToJSON() ([]byte, error) {
	return json.Marshal(r)
}

func ResponseFromJSON(data []byte) (Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return Response{}, err
	}
	return resp, nil
}
