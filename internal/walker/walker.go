// Package walker discovers regular files under a directory tree.
// Traversal is a parallel BFS over raw getdents64, emitting files on a
// channel as they are found. Order across files is unspecified.
package walker

import (
	"runtime"
	"sync"

	"golang.org/x/sys/unix"
)

// FileEntry is a regular file discovered during traversal.
type FileEntry struct {
	Path string
}

// Options configures traversal behavior.
type Options struct {
	Gitignore bool    // honor .gitignore layers while descending
	Hidden    bool    // include hidden files and directories
	Exclude   *Filter // optional path exclusion patterns
}

// WalkError is an error encountered for one path during traversal.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return "walk " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// Walk traverses the directory at root and sends every reachable regular
// file on the returned channel. Directory symlinks are followed, but each
// real directory (device, inode) is visited at most once, so link cycles
// terminate. Both channels are closed when traversal completes.
func Walk(root string, opts Options) (<-chan FileEntry, <-chan error) {
	fileCh := make(chan FileEntry, 256)
	errCh := make(chan error, 16)

	go func() {
		defer close(fileCh)
		defer close(errCh)

		pw := &parallelWalker{
			fileCh:  fileCh,
			errCh:   errCh,
			opts:    opts,
			visited: make(map[devino]struct{}),
		}
		pw.cond = sync.NewCond(&pw.mu)

		var layers []ignoreLayer
		if opts.Gitignore {
			layers = []ignoreLayer{loadIgnoreLayer(root)}
		}
		pw.enqueue(dirItem{path: root, ignores: layers})

		var wg sync.WaitGroup
		for i := 0; i < runtime.NumCPU(); i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				pw.worker()
			}()
		}
		wg.Wait()
	}()

	return fileCh, errCh
}

// devino identifies a directory across symlinks and bind mounts.
type devino struct {
	dev uint64
	ino uint64
}

// dirItem is a directory waiting to be read by a worker.
type dirItem struct {
	path    string
	ignores []ignoreLayer // snapshot of ancestor layers, nil when disabled
}

// parallelWalker coordinates the concurrent BFS.
type parallelWalker struct {
	fileCh chan<- FileEntry
	errCh  chan<- error
	opts   Options

	mu      sync.Mutex
	queue   []dirItem
	pending int
	cond    *sync.Cond
	done    bool

	visitedMu sync.Mutex
	visited   map[devino]struct{}
}

func (pw *parallelWalker) enqueue(item dirItem) {
	pw.mu.Lock()
	pw.queue = append(pw.queue, item)
	pw.pending++
	pw.mu.Unlock()
	pw.cond.Signal()
}

// dequeue blocks until an item is available or all work is complete.
func (pw *parallelWalker) dequeue() (dirItem, bool) {
	pw.mu.Lock()
	defer pw.mu.Unlock()
	for len(pw.queue) == 0 && !pw.done {
		pw.cond.Wait()
	}
	if pw.done && len(pw.queue) == 0 {
		return dirItem{}, false
	}
	item := pw.queue[0]
	pw.queue = pw.queue[1:]
	return item, true
}

// finish marks one directory as fully processed.
func (pw *parallelWalker) finish() {
	pw.mu.Lock()
	pw.pending--
	if pw.pending == 0 && len(pw.queue) == 0 {
		pw.done = true
		pw.cond.Broadcast()
	}
	pw.mu.Unlock()
}

// markVisited records a directory identity, returning false if it was
// already seen.
func (pw *parallelWalker) markVisited(id devino) bool {
	pw.visitedMu.Lock()
	defer pw.visitedMu.Unlock()
	if _, ok := pw.visited[id]; ok {
		return false
	}
	pw.visited[id] = struct{}{}
	return true
}

func (pw *parallelWalker) worker() {
	buf := make([]byte, 32*1024) // per-worker getdents buffer
	var dirents []Dirent
	for {
		item, ok := pw.dequeue()
		if !ok {
			return
		}
		dirents = pw.processDir(item, buf, dirents)
		pw.finish()
	}
}

// processDir reads one directory and dispatches its entries. The fd is
// closed before subdirectories are enqueued, so traversal depth never pins
// open descriptors. Returns the dirents slice for reuse.
func (pw *parallelWalker) processDir(item dirItem, buf []byte, dirents []Dirent) []Dirent {
	fd, err := unix.Open(item.path, unix.O_RDONLY|unix.O_DIRECTORY, 0)
	if err != nil {
		pw.errCh <- &WalkError{Path: item.path, Err: err}
		return dirents
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		unix.Close(fd)
		pw.errCh <- &WalkError{Path: item.path, Err: err}
		return dirents
	}
	if !pw.markVisited(devino{dev: stat.Dev, ino: stat.Ino}) {
		unix.Close(fd)
		return dirents
	}

	var subdirs []dirItem
	for {
		n, err := unix.Getdents(fd, buf)
		if err != nil {
			pw.errCh <- &WalkError{Path: item.path, Err: err}
			break
		}
		if n == 0 {
			break
		}

		dirents = ParseDirents(buf, n, dirents)
		for _, entry := range dirents {
			fullPath := joinPath(item.path, entry.Name)

			dtype := entry.Type
			if dtype == DT_UNKNOWN || dtype == DT_LNK {
				dtype = statType(fullPath)
			}

			switch dtype {
			case DT_DIR:
				if dir, ok := pw.admitDir(entry.Name, fullPath, item.ignores); ok {
					subdirs = append(subdirs, dir)
				}
			case DT_REG:
				pw.admitFile(entry.Name, fullPath, item.ignores)
			}
		}
	}
	unix.Close(fd)

	for _, sub := range subdirs {
		pw.enqueue(sub)
	}
	return dirents
}

// admitDir applies skip rules to a subdirectory and builds its work item.
func (pw *parallelWalker) admitDir(name, fullPath string, parents []ignoreLayer) (dirItem, bool) {
	if skipDir(name, pw.opts.Hidden) {
		return dirItem{}, false
	}
	if pw.opts.Exclude.Match(fullPath) {
		return dirItem{}, false
	}
	if isIgnoredByLayers(parents, fullPath, true) {
		return dirItem{}, false
	}
	var layers []ignoreLayer
	if pw.opts.Gitignore {
		layers = make([]ignoreLayer, len(parents)+1)
		copy(layers, parents)
		layers[len(parents)] = loadIgnoreLayer(fullPath)
	}
	return dirItem{path: fullPath, ignores: layers}, true
}

// admitFile applies skip rules to a regular file and emits it.
func (pw *parallelWalker) admitFile(name, fullPath string, layers []ignoreLayer) {
	if !pw.opts.Hidden && isHidden(name) {
		return
	}
	if pw.opts.Exclude.Match(fullPath) {
		return
	}
	if isIgnoredByLayers(layers, fullPath, false) {
		return
	}
	pw.fileCh <- FileEntry{Path: fullPath}
}

// statType resolves DT_UNKNOWN and symlink entries to DT_DIR/DT_REG, or
// DT_UNKNOWN for anything else (including broken links, silently skipped).
func statType(path string) uint8 {
	var stat unix.Stat_t
	if err := unix.Stat(path, &stat); err != nil {
		return DT_UNKNOWN
	}
	switch stat.Mode & unix.S_IFMT {
	case unix.S_IFDIR:
		return DT_DIR
	case unix.S_IFREG:
		return DT_REG
	}
	return DT_UNKNOWN
}

func joinPath(dir, name string) string {
	if len(dir) > 0 && dir[len(dir)-1] == '/' {
		return dir + name
	}
	return dir + "/" + name
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}

// skipDir reports directories that are never descended into.
// VCS metadata directories are always skipped; other hidden directories are
// skipped unless hidden files were requested.
func skipDir(name string, hidden bool) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	}
	return !hidden && isHidden(name)
}
