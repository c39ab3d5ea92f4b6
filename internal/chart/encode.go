package chart

import "encoding/base64"

const pngDataURIPrefix = "data:image/png;base64,"

// DataURI wraps PNG bytes in a data URI suitable for an <img> src.
func DataURI(png []byte) string {
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(png)
}
