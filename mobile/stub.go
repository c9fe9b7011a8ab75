//go:build !mobile

// Package mobile 是 ebitenmobile bind 的入口包
//
// 桌面构建只编译本文件,NewGame 等导出函数在 mobile.go 中(-tags mobile)。
package mobile

// Dummy 让桌面构建下 go vet ./... 也能加载本包
func Dummy() {}
