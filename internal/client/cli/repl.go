package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eduhub/eduhub/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isAdmin() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Check(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Semesters(ctx context.Context) error
	Subjects(ctx context.Context, args []string) error
	Open(ctx context.Context, args []string) error
	Tab(ctx context.Context, args []string) error
	List(ctx context.Context) error
	QuickAccess(ctx context.Context, kind models.Category, args []string) error
	Download(ctx context.Context, args []string) error
	Upload(ctx context.Context, args []string) error
	Add(ctx context.Context) error
	Delete(ctx context.Context, args []string) error
	Storage(ctx context.Context) error
	Uploads(ctx context.Context) error
}

const (
	guestHelp = "Available commands: semesters, subjects <sem>, open <sem> <subject>, tab <category>, (l)ist, " +
		"download <n>, assignments|pyqs|syllabus [sem], login, check, whoami, exit"
	adminHelp = guestHelp + ", upload <path> [title], add, delete <n>, storage, uploads, logout"
)

// runREPL starts a simple read–eval–print loop for the EduHub CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches the remaining tokens to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on EOF, when ctx is done, or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                       — show available commands
//	  - semesters                  — list the course semesters
//	  - subjects <sem>             — list a semester's subjects
//	  - open <sem> <subject>       — open a subject (key or title)
//	  - tab <category>             — switch the content tab
//	  - list | l                   — list the active tab
//	  - download <n>               — save item n of the active tab
//	  - assignments|pyqs|syllabus  — semester-wide quick access
//	  - login | check | whoami     — admin session
//	  - exit | quit                — leave the program
//
//	Admin:
//	  - upload <path> [title]      — upload a file to the active tab
//	  - add                        — register a metadata-only item
//	  - delete <n>                 — delete item n of the active tab
//	  - storage                    — show where files are stored
//	  - uploads                    — show recent upload attempts
//	  - logout                     — end the admin session
//
// Errors returned by command handlers are printed; the loop keeps going.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("eduhub %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		var cerr error
		switch cmd {
		case "help":
			if a.isAdmin() {
				printlnFn(adminHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "login":
			cerr = a.Login(ctx)
		case "logout":
			cerr = a.Logout(ctx)
		case "check":
			cerr = a.Check(ctx)
		case "whoami", "status":
			cerr = a.WhoAmI(ctx)

		case "semesters":
			cerr = a.Semesters(ctx)
		case "subjects":
			cerr = a.Subjects(ctx, args)
		case "open":
			cerr = a.Open(ctx, args)
		case "tab":
			cerr = a.Tab(ctx, args)
		case "l", "list":
			cerr = a.List(ctx)
		case "download":
			cerr = a.Download(ctx, args)

		case "assignments":
			cerr = a.QuickAccess(ctx, models.CategoryAssignments, args)
		case "pyqs":
			cerr = a.QuickAccess(ctx, models.CategoryPYQs, args)
		case "syllabus":
			cerr = a.QuickAccess(ctx, models.CategorySyllabus, args)

		case "upload":
			cerr = a.Upload(ctx, args)
		case "add":
			cerr = a.Add(ctx)
		case "delete", "rm":
			cerr = a.Delete(ctx, args)
		case "storage":
			cerr = a.Storage(ctx)
		case "uploads":
			cerr = a.Uploads(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cerr != nil {
			printlnFn(userMessage(cerr))
		}
		if err != nil {
			return
		}
	}
}
