package shell

const helpText = `# Commands

- ` + "`lists`" + ` shows every list, unfinished lists first
- ` + "`show <list>`" + ` shows the todos of a list
- ` + "`new <name>`" + ` creates a list
- ` + "`rename <list> <name>`" + ` renames a list
- ` + "`delete <list>`" + ` deletes a list and its todos
- ` + "`add <list> <name>`" + ` adds a todo to a list
- ` + "`check <list> <todo>`" + ` marks a todo as done
- ` + "`uncheck <list> <todo>`" + ` marks a todo as not done
- ` + "`remove <list> <todo>`" + ` deletes a todo
- ` + "`complete <list>`" + ` marks every todo of a list as done
- ` + "`help`" + ` shows this text
- ` + "`quit`" + ` ends the session

Lists and todos are addressed by the numeric id shown in the first column.
Names must be between 1 and 100 characters; list names must be unique.
`
