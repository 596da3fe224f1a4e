package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/cerberussg/playlistcore/internal/shared"
)

const (
	version = "0.1.0"
	usage   = `playctl - control client for playlistd

Usage:
  playctl append <url> [url...]        Append media to the playlist
  playctl insert <index> <url> [...]   Insert media at index
  playctl remove <id> [id...]          Remove items by id
  playctl move <id> [id...] <target>   Move items to target index
  playctl replace <index> <url>        Replace the item at index
  playctl expand <index> <url> [...]   Replace index with url[0], insert
                                        url[1:] immediately after
  playctl goto <id>                    Jump to item by id
  playctl next [n]                     Advance n items (default 1)
  playctl prev [n]                     Step back n items (default 1)
  playctl repeat <none|all|one>        Set playback repeat mode
  playctl order <normal|random>        Set playback order mode
  playctl stopped <continue|pause|stop|exit>
                                        Set the stopped-action
  playctl shuffle                      Shuffle the playlist in place
  playctl sort <key[:desc]> [...]      Sort by one or more criteria
  playctl play                         Start/resume playback
  playctl pause                        Pause playback
  playctl resume                       Resume playback
  playctl stop                         Stop playback
  playctl volume [0-100]               Show or set volume percentage
  playctl status                       Show current status
  playctl list                         List playlist items
  playctl clear                        Clear the playlist
  playctl export <path> [format]       Export the playlist (default m3u8)
  playctl exit                         Exit the daemon
  playctl --help, -h                   Show this help
  playctl --version, -v                Show version`
)

// CLI is the command-line front end over internal/shared.Transport.
type CLI struct {
	transport shared.Transport
}

// NewCLI constructs a CLI talking to the default Unix socket transport.
func NewCLI() *CLI {
	return &CLI{transport: shared.NewUnixSocketTransport()}
}

// Run dispatches args[1:] to the matching command.
func (c *CLI) Run(args []string) {
	if len(args) < 2 {
		fmt.Println("No command provided. Use 'playctl --help' for usage.")
		os.Exit(1)
	}

	switch args[1] {
	case "--help", "-h", "help":
		fmt.Println(usage)
	case "--version", "-v", "version":
		fmt.Printf("playctl %s\n", version)
	case "_daemon":
		c.runDaemon()
	case "append":
		c.handleAppend(args[2:])
	case "insert":
		c.handleInsert(args[2:])
	case "remove":
		c.handleRemove(args[2:])
	case "move":
		c.handleMove(args[2:])
	case "replace":
		c.handleReplace(args[2:])
	case "expand":
		c.handleExpand(args[2:])
	case "goto":
		c.handleGoTo(args[2:])
	case "next":
		c.handleStep(shared.CmdNext, args[2:])
	case "prev":
		c.handleStep(shared.CmdPrev, args[2:])
	case "repeat":
		c.handleRepeat(args[2:])
	case "order":
		c.handleOrder(args[2:])
	case "stopped":
		c.handleStoppedAction(args[2:])
	case "shuffle":
		c.sendCommand(shared.Command{Type: shared.CmdShuffle})
	case "sort":
		c.handleSort(args[2:])
	case "play":
		c.sendCommand(shared.NewPlayCommand())
	case "pause":
		c.sendCommand(shared.NewPauseCommand())
	case "resume":
		c.sendCommand(shared.NewResumeCommand())
	case "stop":
		c.sendCommand(shared.NewStopCommand())
	case "volume":
		c.handleVolume(args[2:])
	case "status":
		c.handleStatus()
	case "list":
		c.handleList()
	case "clear":
		c.sendCommand(shared.NewClearCommand())
	case "export":
		c.handleExport(args[2:])
	case "exit":
		c.sendCommand(shared.NewExitCommand())
	default:
		fmt.Printf("Unknown command: %s\nUse 'playctl --help' for usage.\n", args[1])
		os.Exit(1)
	}
}

func (c *CLI) handleAppend(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: playctl append <url> [url...]")
		os.Exit(1)
	}
	media := make([]shared.MediaRef, len(args))
	for i, u := range args {
		media[i] = shared.MediaRef{URL: u}
	}
	c.startDaemonIfNeeded()
	c.sendCommand(shared.NewAppendCommand(media))
}

func (c *CLI) handleInsert(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: playctl insert <index> <url> [url...]")
		os.Exit(1)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid index: %s\n", args[0])
		os.Exit(1)
	}
	media := make([]shared.MediaRef, len(args)-1)
	for i, u := range args[1:] {
		media[i] = shared.MediaRef{URL: u}
	}
	c.sendCommand(shared.NewInsertCommand(index, media))
}

func (c *CLI) handleRemove(args []string) {
	ids, ok := parseIDs(args)
	if !ok || len(ids) == 0 {
		fmt.Println("Usage: playctl remove <id> [id...]")
		os.Exit(1)
	}
	c.sendCommand(shared.NewRemoveCommand(ids, -1))
}

func (c *CLI) handleMove(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: playctl move <id> [id...] <target>")
		os.Exit(1)
	}
	target, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		fmt.Printf("Invalid target index: %s\n", args[len(args)-1])
		os.Exit(1)
	}
	ids, ok := parseIDs(args[:len(args)-1])
	if !ok || len(ids) == 0 {
		fmt.Println("Usage: playctl move <id> [id...] <target>")
		os.Exit(1)
	}
	c.sendCommand(shared.NewMoveCommand(ids, target, -1))
}

func (c *CLI) handleReplace(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: playctl replace <index> <url>")
		os.Exit(1)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid index: %s\n", args[0])
		os.Exit(1)
	}
	c.sendCommand(shared.NewReplaceCommand(index, shared.MediaRef{URL: args[1]}))
}

func (c *CLI) handleExpand(args []string) {
	if len(args) < 2 {
		fmt.Println("Usage: playctl expand <index> <url> [url...]")
		os.Exit(1)
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Printf("Invalid index: %s\n", args[0])
		os.Exit(1)
	}
	media := make([]shared.MediaRef, len(args)-1)
	for i, u := range args[1:] {
		media[i] = shared.MediaRef{URL: u}
	}
	c.sendCommand(shared.NewExpandCommand(index, media))
}

func (c *CLI) handleGoTo(args []string) {
	ids, ok := parseIDs(args)
	if !ok || len(ids) != 1 {
		fmt.Println("Usage: playctl goto <id>")
		os.Exit(1)
	}
	c.sendCommand(shared.NewGoToCommand(ids, -1))
}

func (c *CLI) handleStep(cmdType shared.CommandType, args []string) {
	count := 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			count = n
		}
	}
	c.sendCommand(shared.Command{Type: cmdType, Count: count})
}

func (c *CLI) handleRepeat(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: playctl repeat <none|all|one>")
		os.Exit(1)
	}
	c.sendCommand(shared.NewSetRepeatCommand(args[0]))
}

func (c *CLI) handleOrder(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: playctl order <normal|random>")
		os.Exit(1)
	}
	c.sendCommand(shared.NewSetOrderCommand(args[0]))
}

func (c *CLI) handleStoppedAction(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: playctl stopped <continue|pause|stop|exit>")
		os.Exit(1)
	}
	c.sendCommand(shared.Command{Type: shared.CmdSetStoppedAct, StoppedAction: args[0]})
}

// handleSort parses "key" or "key:desc" tokens, in order.
func (c *CLI) handleSort(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: playctl sort <key[:desc]> [key[:desc]...]")
		os.Exit(1)
	}
	keys := make([]string, len(args))
	orders := make([]string, len(args))
	for i, a := range args {
		parts := strings.SplitN(a, ":", 2)
		keys[i] = parts[0]
		if len(parts) == 2 {
			orders[i] = parts[1]
		} else {
			orders[i] = "asc"
		}
	}
	c.sendCommand(shared.NewSortCommand(keys, orders))
}

func (c *CLI) handleVolume(args []string) {
	if len(args) == 0 {
		c.sendCommand(shared.NewVolumeCommand(-1))
		return
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v < 0 || v > 100 {
		fmt.Printf("Invalid volume: %s. Use a number from 0-100.\n", args[0])
		os.Exit(1)
	}
	c.sendCommand(shared.NewVolumeCommand(v))
}

func (c *CLI) handleExport(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: playctl export <path> [format]")
		os.Exit(1)
	}
	format := "m3u8"
	if len(args) > 1 {
		format = args[1]
	}
	c.sendCommand(shared.NewExportCommand(args[0], format))
}

func (c *CLI) handleStatus() {
	c.sendCommand(shared.NewStatusCommand())
}

func (c *CLI) handleList() {
	c.sendCommand(shared.NewListCommand())
}

func parseIDs(args []string) ([]uint64, bool) {
	ids := make([]uint64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseUint(a, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

func (c *CLI) sendCommand(cmd shared.Command) {
	transport := shared.NewUnixSocketTransport()
	if !transport.IsRunning() {
		fmt.Println("playlistd is not running. Start it with: playlistd &")
		os.Exit(1)
	}

	resp, err := transport.Send(cmd)
	if err != nil {
		fmt.Printf("Error sending command: %v\n", err)
		os.Exit(1)
	}
	if !resp.Success {
		fmt.Printf("Command failed: %s\n", resp.Message)
		os.Exit(1)
	}

	switch cmd.Type {
	case shared.CmdStatus:
		c.printStatus(resp)
	case shared.CmdList:
		c.printList(resp)
	default:
		if resp.Message != "" {
			fmt.Println(resp.Message)
		}
	}
}

func (c *CLI) printStatus(resp *shared.Response) {
	if resp.Data == nil {
		fmt.Println("No status available.")
		return
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		fmt.Println(resp.Message)
		return
	}
	count := getInt(data, "count", 0)
	current := getInt(data, "current_index", -1)
	repeat, _ := data["repeat"].(string)
	order, _ := data["order"].(string)
	fmt.Printf("%d item(s), current=%d, repeat=%s, order=%s\n", count, current, repeat, order)
	if cur, ok := data["current"].(map[string]interface{}); ok {
		title, _ := cur["title"].(string)
		url, _ := cur["url"].(string)
		if title == "" {
			title = url
		}
		fmt.Printf("> %s\n", title)
	}
}

func (c *CLI) printList(resp *shared.Response) {
	items, ok := resp.Data.([]interface{})
	if !ok {
		fmt.Println(resp.Message)
		return
	}
	for i, raw := range items {
		item, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		marker := "  "
		if current, _ := item["is_current"].(bool); current {
			marker = "> "
		}
		title, _ := item["title"].(string)
		url, _ := item["url"].(string)
		if title == "" {
			title = url
		}
		id := getInt(item, "id", 0)
		fmt.Printf("%s%d. [%d] %s\n", marker, i+1, id, title)
	}
}

func getInt(m map[string]interface{}, key string, def int) int {
	if v, ok := m[key]; ok {
		if f, ok := v.(float64); ok {
			return int(f)
		}
	}
	return def
}

// startDaemonIfNeeded spawns playlistd as a detached background process
// the first time a mutating command is sent and no daemon answers yet.
func (c *CLI) startDaemonIfNeeded() {
	transport := shared.NewUnixSocketTransport()
	if transport.IsRunning() {
		return
	}

	executable, err := exec.LookPath("playlistd")
	if err != nil {
		return
	}
	cmd := exec.Command(executable)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return
	}
	time.Sleep(150 * time.Millisecond)
}

func (c *CLI) runDaemon() {
	fmt.Println("playctl _daemon is not a supported entrypoint; run playlistd directly.")
	os.Exit(1)
}
