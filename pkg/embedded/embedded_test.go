package embedded

import (
	"testing"
	"testing/fstest"
)

// reset 恢复未初始化状态,避免影响其他测试
func reset() {
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/gameplay.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

func TestReadFile(t *testing.T) {
	reset()
	defer reset()

	Init(fstest.MapFS{
		"data/gameplay.yaml": &fstest.MapFile{Data: []byte("combo:\n  window: 3\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"plain path", "data/gameplay.yaml", false},
		{"dot prefix", "./data/gameplay.yaml", false},
		{"wrong prefix", "assets/gameplay.yaml", true},
		{"missing file", "data/missing.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Expected error for %s", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%s) failed: %v", tt.path, err)
			}
			if len(data) == 0 {
				t.Error("Expected file content")
			}
		})
	}
}

func TestExists(t *testing.T) {
	reset()
	defer reset()

	if Exists("data/gameplay.yaml") {
		t.Error("Expected Exists() to return false before Init()")
	}

	Init(fstest.MapFS{
		"data/gameplay.yaml": &fstest.MapFile{Data: []byte("{}")},
	})
	if !Exists("data/gameplay.yaml") {
		t.Error("Expected embedded file to exist")
	}
	if Exists("data/other.yaml") {
		t.Error("Expected missing file to be reported absent")
	}
}
