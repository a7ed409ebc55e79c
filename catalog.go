package main

import (
	"encoding/json"
	"errors"
	"log"
	"os"
)

var (
	ErrAlreadyExists = errors.New("movie already exists")
	ErrNotFound      = errors.New("movie not found")
)

func NewCatalog(filename string) *Catalog {
	c := &Catalog{
		movies:   make(map[string]Movie),
		filename: filename,
	}
	c.loadFromFile()
	return c
}

func (c *Catalog) loadFromFile() {
	data, err := os.ReadFile(c.filename)
	if err != nil {
		if os.IsNotExist(err) {
			log.Println("Movies file does not exist, starting with empty catalog")
			c.mutex.Lock()
			defer c.mutex.Unlock()
			if err := c.save(); err != nil {
				log.Printf("Error creating movies file: %v", err)
			}
			return
		}
		log.Printf("Error reading movies file: %v", err)
		return
	}

	var movies map[string]Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		log.Printf("Error unmarshalling movies: %v", err)
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	for id, movie := range movies {
		c.movies[id] = movie
	}
}

// save writes the whole catalog to a temp file and renames it over the
// snapshot, so readers never observe a partial write. Callers must hold
// the write lock.
func (c *Catalog) save() error {
	data, err := json.MarshalIndent(c.movies, "", "  ")
	if err != nil {
		log.Printf("Error marshaling JSON: %v", err)
		return err
	}

	tmp := c.filename + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		log.Printf("Error writing file %s: %v", tmp, err)
		return err
	}
	if err := os.Rename(tmp, c.filename); err != nil {
		log.Printf("Error renaming %s: %v", tmp, err)
		return err
	}

	return nil
}

func (c *Catalog) Get(id string) (Movie, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	movie, ok := c.movies[id]
	return movie, ok
}

func (c *Catalog) Create(id, title, description, year string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if _, ok := c.movies[id]; ok {
		return ErrAlreadyExists
	}

	c.movies[id] = Movie{Title: title, Description: description, Year: year}
	if err := c.save(); err != nil {
		delete(c.movies, id)
		return err
	}

	return nil
}

func (c *Catalog) Delete(id string) (string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	movie, ok := c.movies[id]
	if !ok {
		return "", ErrNotFound
	}

	delete(c.movies, id)
	if err := c.save(); err != nil {
		c.movies[id] = movie
		return "", err
	}

	return movie.Title, nil
}

func (c *Catalog) AttachVideo(id, fileID string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	movie, ok := c.movies[id]
	if !ok {
		return ErrNotFound
	}

	prev := movie
	movie.FileID = fileID
	c.movies[id] = movie
	if err := c.save(); err != nil {
		c.movies[id] = prev
		return err
	}

	return nil
}

func (c *Catalog) Count() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.movies)
}

func (c *Catalog) Snapshot() map[string]Movie {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	movies := make(map[string]Movie, len(c.movies))
	for id, movie := range c.movies {
		movies[id] = movie
	}
	return movies
}
