package parser

import (
	"regexp"
	"strings"

	"github.com/taskdeck/taskdeck/internal/models"
)

// ParsedTask is the result of smart title parsing.
type ParsedTask struct {
	Title    string
	Category string
	Tags     []string
	Priority models.Priority
	DueDate  *models.Date
	Errors   []string
}

var (
	tagRegex      = regexp.MustCompile(`#([a-zA-Z0-9_,-]+)`)
	categoryRegex = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	priorityRegex = regexp.MustCompile(`\+([a-zA-Z]+)`)
	dueRegex      = regexp.MustCompile(`due:(\S+)`)
)

// ParseTitle extracts metadata from a task title using natural syntax:
//
//	"Fix login bug #auth,backend @work +urgent due:tomorrow"
//
// #tag1,tag2 sets tags, @name the category, +level the priority and
// due:... the due date. Whatever remains is the title. Bad metadata
// values are collected as errors while the rest still parses, so the
// caller can report all problems at once.
func ParseTitle(input string, today models.Date) ParsedTask {
	result := ParsedTask{
		Tags:   []string{},
		Errors: []string{},
	}

	if matches := dueRegex.FindStringSubmatch(input); len(matches) > 1 {
		due, err := ParseDueDate(matches[1], today)
		if err != nil {
			result.Errors = append(result.Errors, "invalid due date '"+matches[1]+"'")
		} else {
			result.DueDate = due
		}
		input = dueRegex.ReplaceAllString(input, "")
	}

	for _, match := range tagRegex.FindAllStringSubmatch(input, -1) {
		for _, tag := range strings.Split(match[1], ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				result.Tags = append(result.Tags, tag)
			}
		}
	}
	input = tagRegex.ReplaceAllString(input, "")

	if matches := categoryRegex.FindStringSubmatch(input); len(matches) > 1 {
		result.Category = matches[1]
		input = categoryRegex.ReplaceAllString(input, "")
	}

	if matches := priorityRegex.FindStringSubmatch(input); len(matches) > 1 {
		priority, err := models.ParsePriority(matches[1])
		if err != nil {
			result.Errors = append(result.Errors, "invalid priority '"+matches[1]+"'")
		} else {
			result.Priority = priority
		}
		input = priorityRegex.ReplaceAllString(input, "")
	}

	result.Title = strings.Join(strings.Fields(input), " ")
	return result
}
