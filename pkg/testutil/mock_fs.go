package testutil

import (
	"io/fs"

	"github.com/arthur-debert/sdsync/pkg/types"
	"github.com/stretchr/testify/mock"
)

// MockFS is a testify mock of types.FS.
//
// A method with no expectation registered is forwarded to Delegate when one
// is set, so a test only has to stub the call it wants to fail.
type MockFS struct {
	mock.Mock
	Delegate types.FS
}

var _ types.FS = (*MockFS)(nil)

// NewMockFS wraps delegate. Register failures with On(...) before use.
func NewMockFS(delegate types.FS) *MockFS {
	return &MockFS{Delegate: delegate}
}

func (m *MockFS) stubbed(method string) bool {
	if m.Delegate == nil {
		return true
	}
	for _, call := range m.ExpectedCalls {
		if call.Method == method {
			return true
		}
	}
	return false
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	if !m.stubbed("Stat") {
		return m.Delegate.Stat(name)
	}
	args := m.Called(name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

func (m *MockFS) Lstat(name string) (fs.FileInfo, error) {
	if !m.stubbed("Lstat") {
		return m.Delegate.Lstat(name)
	}
	args := m.Called(name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

func (m *MockFS) ReadFile(name string) ([]byte, error) {
	if !m.stubbed("ReadFile") {
		return m.Delegate.ReadFile(name)
	}
	args := m.Called(name)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *MockFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if !m.stubbed("WriteFile") {
		return m.Delegate.WriteFile(name, data, perm)
	}
	return m.Called(name, data, perm).Error(0)
}

func (m *MockFS) Mkdir(name string, perm fs.FileMode) error {
	if !m.stubbed("Mkdir") {
		return m.Delegate.Mkdir(name, perm)
	}
	return m.Called(name, perm).Error(0)
}

func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	if !m.stubbed("MkdirAll") {
		return m.Delegate.MkdirAll(path, perm)
	}
	return m.Called(path, perm).Error(0)
}

func (m *MockFS) Symlink(oldname, newname string) error {
	if !m.stubbed("Symlink") {
		return m.Delegate.Symlink(oldname, newname)
	}
	return m.Called(oldname, newname).Error(0)
}

func (m *MockFS) Readlink(name string) (string, error) {
	if !m.stubbed("Readlink") {
		return m.Delegate.Readlink(name)
	}
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

func (m *MockFS) Rename(oldpath, newpath string) error {
	if !m.stubbed("Rename") {
		return m.Delegate.Rename(oldpath, newpath)
	}
	return m.Called(oldpath, newpath).Error(0)
}

func (m *MockFS) Remove(name string) error {
	if !m.stubbed("Remove") {
		return m.Delegate.Remove(name)
	}
	return m.Called(name).Error(0)
}

func (m *MockFS) RemoveAll(path string) error {
	if !m.stubbed("RemoveAll") {
		return m.Delegate.RemoveAll(path)
	}
	return m.Called(path).Error(0)
}

func (m *MockFS) Move(src, dst string) error {
	if !m.stubbed("Move") {
		return m.Delegate.Move(src, dst)
	}
	return m.Called(src, dst).Error(0)
}

func (m *MockFS) CopyAll(src, dst string) error {
	if !m.stubbed("CopyAll") {
		return m.Delegate.CopyAll(src, dst)
	}
	return m.Called(src, dst).Error(0)
}
