package console

import (
	"context"

	"github.com/jsamuelsen11/taskconsole/internal/domain/task"
	"github.com/jsamuelsen11/taskconsole/internal/output"
)

func (c *Console) addTask(ctx context.Context) error {
	title, err := c.readLine(ctx, promptTitle)
	if err != nil {
		return err
	}
	if title == "" {
		c.println("Error: " + task.MsgTitleRequired)
		return nil
	}

	description, err := c.readLine(ctx, promptDescription)
	if err != nil {
		return err
	}

	created, err := c.svc.CreateTask(ctx, title, optional(description))
	if err != nil {
		c.println("Error: " + err.Error())
		return nil
	}

	c.printf("Task added successfully with ID: %d\n", created.ID)
	return nil
}

func (c *Console) viewTasks(ctx context.Context) {
	tasks := c.svc.ListTasks(ctx)
	if len(tasks) == 0 {
		c.println("No tasks found")
		return
	}
	c.table.FormatTasks(c.out, tasks)
}

func (c *Console) updateTask(ctx context.Context) error {
	id, ok, err := c.readID(ctx, promptUpdateID)
	if err != nil || !ok {
		return err
	}

	current, found := c.svc.GetTask(ctx, id)
	if !found {
		c.notFound(id)
		return nil
	}

	c.println("Current task: " + current.Title)
	if current.DescriptionOrEmpty() != "" {
		c.println("Current description: " + *current.Description)
	}

	title, err := c.readLine(ctx, promptNewTitle)
	if err != nil {
		return err
	}
	description, err := c.readLine(ctx, promptNewDesc)
	if err != nil {
		return err
	}

	_, found, err = c.svc.UpdateTask(ctx, id, task.Patch{
		Title:       optional(title),
		Description: optional(description),
	})
	switch {
	case err != nil:
		c.println("Error: " + err.Error())
	case !found:
		c.notFound(id)
	default:
		c.println("Task updated successfully")
	}
	return nil
}

func (c *Console) deleteTask(ctx context.Context) error {
	id, ok, err := c.readID(ctx, promptDeleteID)
	if err != nil || !ok {
		return err
	}

	if !c.svc.DeleteTask(ctx, id) {
		c.notFound(id)
		return nil
	}
	c.println("Task deleted successfully")
	return nil
}

func (c *Console) toggleTask(ctx context.Context) error {
	id, ok, err := c.readID(ctx, promptToggleID)
	if err != nil || !ok {
		return err
	}

	toggled, found := c.svc.ToggleTaskStatus(ctx, id)
	if !found {
		c.notFound(id)
		return nil
	}
	c.printf("Task %d marked as %s\n", id, output.Status(toggled.Completed))
	return nil
}
