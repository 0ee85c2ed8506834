package extract

func init() {
	Register(".txt", extractPlaintext)
}

func extractPlaintext(filename string, data []byte) (string, error) {
	_ = filename
	return string(data), nil
}
