package main

import (
	"fmt"

	"github.com/lucasgdosr/ringdeque"
)

type step struct {
	name  string
	apply func(*ringdeque.Deque[int]) error
}

func pushBack(v int) step {
	return step{fmt.Sprintf("push back %d", v), func(d *ringdeque.Deque[int]) error {
		d.PushBack(v)
		return nil
	}}
}

func pushFront(v int) step {
	return step{fmt.Sprintf("push front %d", v), func(d *ringdeque.Deque[int]) error {
		d.PushFront(v)
		return nil
	}}
}

func emplaceBack(v int) step {
	return step{fmt.Sprintf("emplace back %d", v), func(d *ringdeque.Deque[int]) error {
		return d.EmplaceBack(func() (int, error) { return v, nil })
	}}
}

func emplaceFront(v int) step {
	return step{fmt.Sprintf("emplace front %d", v), func(d *ringdeque.Deque[int]) error {
		return d.EmplaceFront(func() (int, error) { return v, nil })
	}}
}

var popBack = step{"pop back", func(d *ringdeque.Deque[int]) error {
	_, err := d.PopBack()
	return err
}}

var popFront = step{"pop front", func(d *ringdeque.Deque[int]) error {
	_, err := d.PopFront()
	return err
}}

// scenarios exercise eviction from both ends of a deque of capacity 5.
var scenarios = map[string][]step{
	"back": {
		emplaceBack(5), emplaceBack(3), pushFront(1), pushBack(2), popBack,
		emplaceBack(9), emplaceBack(11), emplaceBack(12),
		popBack, popBack, popBack, popFront, popFront,
	},
	"front": {
		emplaceFront(5), emplaceFront(3), pushFront(1), pushFront(2), popFront,
		emplaceFront(9), emplaceFront(11), emplaceFront(12),
		popFront, popFront, popFront, popBack, popBack,
	},
}
