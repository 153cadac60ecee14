// Command tlq benchmarks MPMC queue implementations.
//
// Usage:
//
//	go run ./cmd/tlq -n 1000000 -producers 4 -consumers 4
package main

import (
	"flag"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	tlqueue "github.com/randomizedcoder/go-two-lock-queue"
	"github.com/randomizedcoder/go-two-lock-queue/internal/compare"
)

func main() {
	total := flag.Int("n", 1_000_000, "total number of values to move through each queue")
	producers := flag.Int("producers", 4, "number of producer goroutines")
	consumers := flag.Int("consumers", 4, "number of consumer goroutines")
	chanSize := flag.Int("chansize", 1024, "buffer size for the channel queue")
	flag.Parse()

	fmt.Printf("Benchmarking MPMC queues (%d values, %d producers, %d consumers)\n",
		*total, *producers, *consumers)
	fmt.Println("─────────────────────────────────────────────────")

	twoLockDur := run(tlqueue.New[int](), *total, *producers, *consumers)
	singleDur := run(compare.NewSingleLock[int](), *total, *producers, *consumers)
	chanDur := run(compare.NewChannel[int](*chanSize), *total, *producers, *consumers)

	twoLockPerOp := float64(twoLockDur.Nanoseconds()) / float64(*total)
	singlePerOp := float64(singleDur.Nanoseconds()) / float64(*total)
	chanPerOp := float64(chanDur.Nanoseconds()) / float64(*total)

	fmt.Printf("\nResults (push + pop per value):\n")
	fmt.Printf("  TwoLock:     %v (%.2f ns/op)\n", twoLockDur, twoLockPerOp)
	fmt.Printf("  SingleLock:  %v (%.2f ns/op)\n", singleDur, singlePerOp)
	fmt.Printf("  Channel:     %v (%.2f ns/op)\n", chanDur, chanPerOp)

	if twoLockPerOp < singlePerOp {
		fmt.Printf("\n  Speedup:  %.2fx (TwoLock faster than SingleLock)\n", singlePerOp/twoLockPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (SingleLock faster than TwoLock)\n", twoLockPerOp/singlePerOp)
	}

	fmt.Printf("\nThroughput (values/sec):\n")
	fmt.Printf("  TwoLock:     %.2f M\n", 1000/twoLockPerOp)
	fmt.Printf("  SingleLock:  %.2f M\n", 1000/singlePerOp)
	fmt.Printf("  Channel:     %.2f M\n", 1000/chanPerOp)
}

// run moves `total` values through q with the given producer/consumer
// crowd and returns the elapsed wall time.
func run(q compare.Queue[int], total, producers, consumers int) time.Duration {
	var consumed atomic.Int64
	var wg sync.WaitGroup

	start := time.Now()

	perProd := total / producers
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(base int) {
			defer wg.Done()
			for i := 0; i < perProd; i++ {
				q.Push(base + i)
			}
		}(p * perProd)
	}

	for c := 0; c < consumers; c++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				if _, ok := q.Pop(); ok {
					consumed.Add(1)
					continue
				}
				if consumed.Load() >= int64(producers)*int64(perProd) {
					return
				}
			}
		}()
	}

	wg.Wait()
	return time.Since(start)
}
