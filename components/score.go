package components

import "github.com/yohamta/donburi"

type ScoreData struct {
	Points int
	Shots  int
	Hits   int
	Best   int // best points across sessions

	Feedback          string
	FeedbackHit       bool
	FeedbackRemaining float64 // seconds
}

var Score = donburi.NewComponentType[ScoreData]()
