package tui

import "fmt"

// CommandKind enumerates what the user asked for from the menu.
type CommandKind int

const (
	CommandCopy CommandKind = iota + 1
	CommandAdd
	CommandDelete
	CommandModify
)

func (k CommandKind) String() string {
	switch k {
	case CommandCopy:
		return "copy"
	case CommandAdd:
		return "add"
	case CommandDelete:
		return "delete"
	case CommandModify:
		return "modify"
	default:
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
}

// Command is a menu decision. Index is the entry index for Copy, Delete and
// Modify and is unused for Add.
type Command struct {
	Kind  CommandKind
	Index int
}

func CopyCommand(index int) Command   { return Command{Kind: CommandCopy, Index: index} }
func AddCommand() Command             { return Command{Kind: CommandAdd} }
func DeleteCommand(index int) Command { return Command{Kind: CommandDelete, Index: index} }
func ModifyCommand(index int) Command { return Command{Kind: CommandModify, Index: index} }

// HasIndex reports whether the command targets an existing entry.
func (c Command) HasIndex() bool {
	return c.Kind == CommandCopy || c.Kind == CommandDelete || c.Kind == CommandModify
}

func (c Command) String() string {
	if c.HasIndex() {
		return fmt.Sprintf("%s(%d)", c.Kind, c.Index)
	}
	return c.Kind.String()
}
