package cli

import (
	"context"
	"os"
)

// Favorites prints the current user's favorites, most recent first.
func (a *App) Favorites(ctx context.Context) error {
	a.printStories(a.user.Favorites)
	return nil
}

// Favorite prompts for a story id and marks it as a favorite. The
// duplicate check lives here, not in the service: AddFavorite itself does
// not de-duplicate.
func (a *App) Favorite(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter story id to favorite", os.Stdout)
	if err != nil {
		return err
	}

	story := a.stories.List.Find(id)
	if story == nil {
		printlnFn("No such story in the current listing:", id)
		return nil
	}
	if a.user.IsFavorite(story) {
		printlnFn("Already a favorite.")
		return nil
	}

	if err := a.stories.AddFavorite(ctx, a.user, story); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Favorited:", story.Title)
	return nil
}

// Unfavorite prompts for a story id and clears the favorite mark.
func (a *App) Unfavorite(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter story id to unfavorite", os.Stdout)
	if err != nil {
		return err
	}

	story := a.stories.List.Find(id)
	if story == nil {
		printlnFn("No such story in the current listing:", id)
		return nil
	}

	if err := a.stories.RemoveFavorite(ctx, a.user, story); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Unfavorited:", story.Title)
	return nil
}
