//go:build gofuzz

package dlis

func Fuzz(data []byte) int {
	f, err := OpenBytes(data, WithEagerIndex(true))
	if err != nil {
		return 0
	}
	defer f.Close()
	if _, err := f.Objects(); err != nil {
		return 0
	}
	return 1
}
