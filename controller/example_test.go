package controller_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/algostep/builder"
	"github.com/katalvlaran/algostep/controller"
	"github.com/katalvlaran/algostep/event"
)

func Example() {
	status := make(chan string, 1)
	sink := event.Hooks{
		RunStart: func(topic, algorithm string) { fmt.Printf("start %s/%s\n", topic, algorithm) },
		Status:   func(msg string) { status <- msg },
	}
	c, err := controller.New(
		controller.WithSelection("search", "binary"),
		controller.WithSpeed(0),
		controller.WithSink(sink),
		controller.WithSource(builder.NewFixed(&builder.Buffer{Array: []int{9, 2, 7, 4}, Target: 7})),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = c.Run(ctx) }()

	c.Start()
	fmt.Println(<-status)
	fmt.Println(c.Snapshot().Mode)
	// Output:
	// start search/binary
	// found 7 at index 2
	// complete
}
