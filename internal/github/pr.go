package github

import (
	"context"
	"fmt"

	"pr-risk-radar/internal/model"
)

// perPage — размер первой (и единственной) страницы списка файлов PR.
const perPage = 100

// PullRequest запрашивает детали pull request'а.
func (c *Client) PullRequest(ctx context.Context, owner, repo string, number int) (model.PullRequestDetail, error) {
	var pr model.PullRequestDetail
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d", owner, repo, number)
	if err := c.get(ctx, path, &pr); err != nil {
		return model.PullRequestDetail{}, err
	}
	return pr, nil
}

// ChangedFiles запрашивает первую страницу изменённых файлов PR (до 100 штук).
func (c *Client) ChangedFiles(ctx context.Context, owner, repo string, number int) ([]model.ChangedFile, error) {
	var files []model.ChangedFile
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d/files?per_page=%d", owner, repo, number, perPage)
	if err := c.get(ctx, path, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// Reviews запрашивает список ревью PR.
func (c *Client) Reviews(ctx context.Context, owner, repo string, number int) ([]model.Review, error) {
	var reviews []model.Review
	path := fmt.Sprintf("/repos/%s/%s/pulls/%d/reviews", owner, repo, number)
	if err := c.get(ctx, path, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// CheckRuns запрашивает CI-чеки на указанном коммите.
func (c *Client) CheckRuns(ctx context.Context, owner, repo, sha string) (model.CheckRunList, error) {
	var list model.CheckRunList
	path := fmt.Sprintf("/repos/%s/%s/commits/%s/check-runs", owner, repo, sha)
	if err := c.get(ctx, path, &list); err != nil {
		return model.CheckRunList{}, err
	}
	return list, nil
}
