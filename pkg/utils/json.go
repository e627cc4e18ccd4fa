package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

func PrettyJson(in any) string {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	buffer, err := json.MarshalIndent(in, "", "\t")
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return string(buffer)
}
