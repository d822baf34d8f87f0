package main

import (
	"fmt"
	"os"

	"github.com/zaesho/rl-dissect/dissect"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: replayinfo <match.replay>")
		os.Exit(1)
	}

	r := dissect.Reader{NetworkPolicy: dissect.NetworkNever}
	replay, err := r.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	header := replay.Header()
	fmt.Printf("Game type: %s\n", replay.GameType)
	fmt.Printf("Version:   %d.%d", replay.MajorVersion, replay.MinorVersion)
	if replay.NetVersion != nil {
		fmt.Printf(" (net %d)", *replay.NetVersion)
	}
	fmt.Println()

	if matchType, ok := header.MatchType(); ok {
		fmt.Printf("Match:     %s\n", matchType)
	}
	if frames, ok := header.NumFrames(); ok {
		fmt.Printf("Frames:    %d\n", frames)
	}
	if teamSize, ok := replay.Properties.Get("TeamSize"); ok {
		fmt.Printf("Team size: %d\n", teamSize.Int)
	}

	score := func(name string) int32 {
		p, _ := replay.Properties.Get(name)
		return p.Int
	}
	fmt.Printf("Score:     %d - %d\n", score("Team0Score"), score("Team1Score"))

	if goals, ok := replay.Properties.Get("Goals"); ok && goals.Kind == dissect.PropArray {
		fmt.Printf("Goals:\n")
		for _, goal := range goals.Array {
			name, _ := goal.Get("PlayerName")
			team, _ := goal.Get("PlayerTeam")
			frame, _ := goal.Get("frame")
			fmt.Printf("  frame %-6d team %d  %s\n", frame.Int, team.Int, name.Str)
		}
	}
}
