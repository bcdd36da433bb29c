package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/fenboard-go/internal/chess"
	"github.com/lgbarn/fenboard-go/internal/fen"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(0)
	board := fen.NewInitialBoard()

	const numBoards = 100
	const numWorkers = 10
	perWorker := numBoards / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * perWorker
			for j := start; j < start+perWorker; j++ {
				detector.CheckAndAdd(board, j)
			}
		}(w)
	}
	wg.Wait()

	if detector.DuplicateCount() != numBoards-1 {
		t.Errorf("DuplicateCount() = %d, want %d", detector.DuplicateCount(), numBoards-1)
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d, want 1", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(0)

	var wg sync.WaitGroup
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			wg.Add(1)
			go func(x, y int) {
				defer wg.Done()
				b := chess.NewBoard()
				b.Set(x, y, chess.W(chess.King))
				detector.CheckAndAdd(b, y*chess.BoardSize+x)
			}(x, y)
		}
	}
	wg.Wait()

	if detector.UniqueCount() != chess.NumSlots {
		t.Errorf("UniqueCount() = %d, want %d", detector.UniqueCount(), chess.NumSlots)
	}
	if detector.DuplicateCount() != 0 {
		t.Errorf("DuplicateCount() = %d, want 0", detector.DuplicateCount())
	}
}

func TestThreadSafeDuplicateDetector_IsFull(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(2)
	detector.CheckAndAdd(chess.NewBoard(), 0)
	if detector.IsFull() {
		t.Error("IsFull() = true with one of two entries")
	}
	detector.CheckAndAdd(fen.NewInitialBoard(), 1)
	if !detector.IsFull() {
		t.Error("IsFull() = false at capacity")
	}
}
