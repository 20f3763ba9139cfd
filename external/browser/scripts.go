package browser

import (
	"strconv"
)

func clickTextScript(selector, text string) string {
	return `(() => {
  const needle = ` + strconv.Quote(text) + `.toLowerCase();
  for (const el of document.querySelectorAll(` + strconv.Quote(selector) + `)) {
    const visible = !!(el.offsetWidth || el.offsetHeight || el.getClientRects().length);
    if (visible && (el.textContent || '').toLowerCase().includes(needle)) {
      el.click();
      return true;
    }
  }
  return false;
})()`
}

func clickFirstScript(selector string) string {
	return `(() => {
  const el = document.querySelector(` + strconv.Quote(selector) + `);
  if (!el || !(el.offsetWidth || el.offsetHeight || el.getClientRects().length)) {
    return false;
  }
  el.click();
  return true;
})()`
}

func countScript(selector string) string {
	return `document.querySelectorAll(` + strconv.Quote(selector) + `).length`
}
