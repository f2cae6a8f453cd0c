// gochess - a two-player terminal chess game.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/michaelkrisper/gochess/internal/board"
	"github.com/michaelkrisper/gochess/internal/game"
	"github.com/michaelkrisper/gochess/internal/storage"
	"github.com/michaelkrisper/gochess/internal/ui"
)

var (
	letters = flag.Bool("letters", false, "render pieces as letters instead of chess symbols")
	noColor = flag.Bool("no-color", false, "disable ANSI colors")
)

func main() {
	flag.Parse()

	glyphs := board.SymbolGlyphs
	if *letters {
		glyphs = board.LetterGlyphs
	}

	cli := &cli{
		in:       bufio.NewScanner(os.Stdin),
		renderer: ui.NewRenderer(glyphs, !*noColor),
	}
	defer cli.close()

	cli.game = game.NewGame(cli.promptPromotion)
	cli.run()
}

type cli struct {
	in       *bufio.Scanner
	renderer *ui.Renderer
	game     *game.Game
	store    *storage.Storage
}

func (c *cli) run() {
	fmt.Println("gochess - enter moves like \"e2 e4\", or \"help\" for commands")

	for {
		fmt.Println(c.renderer.Render(c.game))

		if c.game.Status().Terminal() {
			c.announceResult()
		} else if c.game.InCheck() {
			fmt.Printf("%s is in check\n", c.game.Player(c.game.SideToMove()).Name)
		}

		fmt.Printf("%s> ", c.game.Player(c.game.SideToMove()).Name)
		if !c.in.Scan() {
			return
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}

		if done := c.dispatch(line); done {
			return
		}
	}
}

func (c *cli) dispatch(line string) (quit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		printHelp()
	case "new":
		c.game = game.NewGame(c.promptPromotion)
	case "name":
		if len(fields) < 3 || (fields[1] != "white" && fields[1] != "black") {
			fmt.Println("usage: name <white|black> <name>")
			break
		}
		color := board.White
		if fields[1] == "black" {
			color = board.Black
		}
		c.game.SetName(color, strings.Join(fields[2:], " "))
	case "save":
		if len(fields) != 2 {
			fmt.Println("usage: save <name>")
			break
		}
		c.saveGame(fields[1])
	case "load":
		if len(fields) != 2 {
			fmt.Println("usage: load <name>")
			break
		}
		c.loadGame(fields[1])
	case "games":
		c.listGames()
	case "delete":
		if len(fields) != 2 {
			fmt.Println("usage: delete <name>")
			break
		}
		if s := c.storage(); s != nil {
			if err := s.DeleteGame(fields[1]); err != nil {
				fmt.Println(err)
			}
		}
	default:
		c.move(line)
	}
	return false
}

func (c *cli) move(line string) {
	from, to, err := ui.ParseMove(line)
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := c.game.Move(from, to)
	if err != nil {
		fmt.Println("move rejected:", err)
		return
	}

	if res.Info.Castled {
		fmt.Println("castled")
	}
	if res.Info.EnPassant {
		fmt.Println("captured en passant")
	}
	if res.Info.Promoted != board.NoPieceType {
		fmt.Printf("promoted to %s\n", res.Info.Promoted)
	}
}

func (c *cli) promptPromotion() board.PieceType {
	fmt.Print("promote pawn to (q/r/b/n): ")
	if !c.in.Scan() {
		// stdin closed mid-game, fall back to the strongest piece
		return board.Queen
	}
	return ui.ParsePromotion(c.in.Text())
}

func (c *cli) announceResult() {
	status := c.game.Status()
	if winner := c.game.Winner(); winner != nil {
		fmt.Printf("checkmate - %s wins\n", winner.Name)
	} else {
		fmt.Println(status)
	}
	fmt.Println("type \"new\" for a new game or \"quit\" to exit")
}

func (c *cli) storage() *storage.Storage {
	if c.store == nil {
		s, err := storage.NewStorage()
		if err != nil {
			log.Printf("cannot open storage: %v", err)
			return nil
		}
		c.store = s
	}
	return c.store
}

func (c *cli) saveGame(name string) {
	s := c.storage()
	if s == nil {
		return
	}
	if err := s.SaveGame(name, c.game.Snapshot()); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("saved as %q\n", name)
}

func (c *cli) loadGame(name string) {
	s := c.storage()
	if s == nil {
		return
	}
	saved, err := s.LoadGame(name)
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := game.Restore(saved.Snapshot, c.promptPromotion)
	if err != nil {
		fmt.Println(err)
		return
	}
	c.game = g
	fmt.Printf("loaded %q\n", name)
}

func (c *cli) listGames() {
	s := c.storage()
	if s == nil {
		return
	}
	names, err := s.ListGames()
	if err != nil {
		fmt.Println(err)
		return
	}
	if len(names) == 0 {
		fmt.Println("no saved games")
		return
	}
	for _, name := range names {
		fmt.Println(" ", name)
	}
}

func (c *cli) close() {
	if c.store != nil {
		c.store.Close()
	}
}

func printHelp() {
	fmt.Println(`commands:
  e2 e4            move a piece
  name <color> <n> rename a player
  save <name>      save the current game
  load <name>      load a saved game
  games            list saved games
  delete <name>    delete a saved game
  new              start a new game
  quit             exit`)
}
