package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hacksnooze/hacksnooze-go/internal/client/client"
	"github.com/hacksnooze/hacksnooze-go/internal/client/models"
)

// formatStory renders one story line the way the web client does: title,
// hostname, author, and poster, plus a star when the current user has
// favorited it.
func (a *App) formatStory(s *models.Story) string {
	star := " "
	if a.user != nil && a.user.IsFavorite(s) {
		star = "*"
	}
	host, err := s.Hostname()
	if err != nil {
		host = "?"
	}
	return fmt.Sprintf("%s %s  %s (%s) by %s, posted by %s", star, s.StoryID, s.Title, host, s.Author, s.Username)
}

func (a *App) printStories(stories []*models.Story) {
	if len(stories) == 0 {
		printlnFn("No stories.")
		return
	}
	for _, s := range stories {
		printlnFn(a.formatStory(s))
	}
}

// List refreshes the story listing from the server and prints it.
func (a *App) List(ctx context.Context) error {
	if err := a.stories.Refresh(ctx); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	a.printStories(a.stories.List.Stories)
	return nil
}

// MyStories prints the current user's own stories.
func (a *App) MyStories(ctx context.Context) error {
	a.printStories(a.user.OwnStories)
	return nil
}

// Add prompts for the story fields and submits a new story. The server does
// all validation; a rejection is printed as-is.
func (a *App) Add(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "Author", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "URL", os.Stdout)
	if err != nil {
		return err
	}

	story, err := a.stories.Add(ctx, a.user, client.StoryDraft{Title: title, Author: author, URL: url})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Added:", a.formatStory(story))
	return nil
}

// Edit prompts for a story id and replacement fields and submits the edit.
func (a *App) Edit(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter story id to edit", os.Stdout)
	if err != nil {
		return err
	}
	title, err := getSimpleText(a.reader, "New title", os.Stdout)
	if err != nil {
		return err
	}
	author, err := getSimpleText(a.reader, "New author", os.Stdout)
	if err != nil {
		return err
	}
	url, err := getSimpleText(a.reader, "New URL", os.Stdout)
	if err != nil {
		return err
	}

	story, err := a.stories.Edit(ctx, a.user, id, client.StoryDraft{Title: title, Author: author, URL: url})
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Updated:", a.formatStory(story))
	return nil
}

// Delete prompts for a story id and removes the story. Ownership is checked
// by the server, not here.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter story id to delete", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.stories.Remove(ctx, a.user, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Deleted.")
	return nil
}

// Show fetches one story by id straight from the server and prints it.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter story id", os.Stdout)
	if err != nil {
		return err
	}

	story, err := a.stories.GetByID(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn(a.formatStory(story))
	printlnFn("  url:", story.URL)
	printlnFn("  posted:", story.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
