package cnx

import "encoding/json"

// TAA is a transaction author agreement published on the ledger.
type TAA struct {
	Text    string
	Version string
}

// ParseTAA reads the agreement from a GET_TXN_AUTHR_AGRMT response. A response
// without a result.data object means that the ledger has no agreement, and
// then ParseTAA returns nil and no error. Only a response which isn't JSON at
// all is an error.
func ParseTAA(response string) (*TAA, error) {
	var top interface{}
	if err := json.Unmarshal([]byte(response), &top); err != nil {
		return nil, err
	}
	result := object(top, "result")
	if result == nil {
		return nil, nil
	}
	data := object(result, "data")
	if data == nil {
		return nil, nil
	}
	text, ok := data["text"].(string)
	if !ok {
		return nil, nil
	}
	version, ok := data["version"].(string)
	if !ok {
		return nil, nil
	}
	return &TAA{Text: text, Version: version}, nil
}

// object returns v[key] when both are JSON objects.
func object(v interface{}, key string) map[string]interface{} {
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	o, _ := m[key].(map[string]interface{})
	return o
}
