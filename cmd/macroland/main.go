// Command macroland builds one container of every family and prints it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/denismitr/macroland/box"
	"github.com/denismitr/macroland/cell"
	"github.com/denismitr/macroland/hashmap"
	"github.com/denismitr/macroland/heap"
	"github.com/denismitr/macroland/kv"
	"github.com/denismitr/macroland/list"
	"github.com/denismitr/macroland/queue"
	"github.com/denismitr/macroland/set"
	"github.com/denismitr/macroland/sortedmap"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(w io.Writer) error {
	btreeLiterals(w)
	if err := cellLiterals(w); err != nil {
		return err
	}
	hashLiterals(w)
	miscLiterals(w)
	otherCollectionLiterals(w)
	return nil
}

func btreeLiterals(w io.Writer) {
	btreemap := sortedmap.Of(kv.P("Hi Ikarite", true))
	uninitBTreeMap := sortedmap.New[string, bool]()

	btreeset := set.SortedOf("Bosnia")
	uninitBTreeSet := set.NewSorted[uint]()

	uninitBTreeMap.Set("Ikarite sussy", false)
	uninitBTreeSet.Insert(1000)

	fmt.Fprintf(w, "BTreeMap: %v | Uninitialized BTreeMap: %v\n\n", btreemap, uninitBTreeMap)
	fmt.Fprintf(w, "BTreeSet: %v | Uninitialized BTreeSet: %v\n\n", btreeset, uninitBTreeSet)
}

func cellLiterals(w io.Writer) error {
	c := cell.Of([]int{1, 2, 3})
	uninitOnce := cell.NewOnce[string]()

	if err := uninitOnce.Set("Meow!"); err != nil {
		return err
	}

	v, _ := uninitOnce.Get()
	fmt.Fprintf(w, "Cell: %v\n\n", c.Get())
	fmt.Fprintf(w, "Uninitialized OnceCell: %v\n\n", v)
	return nil
}

func hashLiterals(w io.Writer) {
	hm := hashmap.Of(kv.P("uwu", 100))
	uninitHashMap := hashmap.New[uint, string]()

	hs := set.Of(200, 300, 400)
	uninitHashSet := set.New[uint]()

	uninitHashMap[10] = "Hi"
	uninitHashSet.Insert(10)

	fmt.Fprintf(w, "HashMap: %v | Uninitialized HashMap: %v\n\n", hm, uninitHashMap)
	fmt.Fprintf(w, "HashSet: %v | Uninitialized HashSet: %v\n\n", hs, uninitHashSet)
}

func miscLiterals(w io.Writer) {
	boxy := box.Of(10)

	fmt.Fprintf(w, "Box: %v\n\n", *boxy)
}

func otherCollectionLiterals(w io.Writer) {
	pq := heap.Of(100)
	uninitHeap := heap.New[uint]()

	ll := list.Of("UWU", "OWO", "U3U")
	uninitList := list.New[string]()

	dq := queue.DequeOf("uwu", "owo", "uwe")
	uninitDeque := queue.NewDeque[string]()

	uninitHeap.Push(10)

	uninitList.PushFront("OWE")
	uninitList.PushBack("YOYOYO")

	uninitDeque.PushFront("Bruh.")
	uninitDeque.PushBack("BABABOEEY")

	fmt.Fprintf(w, "BinaryHeap: %v | Uninitialized BinaryHeap: %v\n\n", pq, uninitHeap)
	fmt.Fprintf(w, "LinkedList: %v | Uninitialized LinkedList: %v\n\n", ll, uninitList)
	fmt.Fprintf(w, "VecDeque: %v | Uninitialized VecDeque: %v\n\n", dq, uninitDeque)
}
