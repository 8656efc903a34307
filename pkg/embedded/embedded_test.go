package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/escalator.yaml": {Data: []byte("tick:\n  intervalMs: 16\n")},
		"data/extra/a.yaml":   {Data: []byte("a: 1\n")},
	}
}

// reset 恢复未初始化状态，避免影响其他测试
func reset() {
	dataFS = nil
	initialized = false
}

func TestIsInitialized(t *testing.T) {
	reset()
	defer reset()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

func TestReadFileNotInitialized(t *testing.T) {
	reset()

	_, err := ReadFile("data/escalator.yaml")
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
	Init(testFS())

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"正常路径", "data/escalator.yaml", false},
		{"带 ./ 前缀", "./data/escalator.yaml", false},
		{"不存在的文件", "data/missing.yaml", true},
		{"未知前缀", "assets/escalator.yaml", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("expected file content")
			}
		})
	}
}

func TestExistsAndReadDir(t *testing.T) {
	reset()
	defer reset()
	Init(testFS())

	if !Exists("data/escalator.yaml") {
		t.Error("expected data/escalator.yaml to exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("unexpected file reported as existing")
	}

	entries, err := ReadDir("data/extra")
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "a.yaml" {
		t.Errorf("unexpected entries %v", entries)
	}
}
