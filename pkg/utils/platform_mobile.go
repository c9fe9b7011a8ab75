//go:build mobile

package utils

// IsMobile ebitenmobile 构建始终按触摸设备处理,显示虚拟摇杆
func IsMobile() bool {
	return true
}
