//go:build !amd64

package consts

const (
	HasAVX2  = false
	HasSSE41 = false
)
