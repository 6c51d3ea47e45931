package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return ""
		}

		in = decoded
	}

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		return ""
	}

	return string(buffer)
}
